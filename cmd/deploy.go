package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"txledger/internal/config"
	"txledger/internal/ethereum"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/ethclient"
)

var errNoDeployer = errors.New("keystore has no accounts")

// Deploy publishes the ledger contract from the first keystore account and
// returns its address once the contract code is on chain.
func Deploy() (string, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewDeploy()
	if err != nil {
		return "", fmt.Errorf("create config: %w", err)
	}

	artifact, err := ethereum.LoadArtifact(cfg.ArtifactPath)
	if err != nil {
		return "", err
	}

	client, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		return "", fmt.Errorf("dial node: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("chain id: %w", err)
	}

	ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	accounts := ks.Accounts()
	if len(accounts) == 0 {
		return "", fmt.Errorf("%w: %s", errNoDeployer, cfg.KeystoreDir)
	}
	deployer := accounts[0]

	if err := ks.Unlock(deployer, cfg.KeystorePassphrase); err != nil {
		return "", fmt.Errorf("unlock %s: %w", deployer.Address.Hex(), err)
	}
	defer ks.Lock(deployer.Address)

	opts, err := bind.NewKeyStoreTransactorWithChainID(ks, deployer, chainID)
	if err != nil {
		return "", fmt.Errorf("create transactor: %w", err)
	}

	address, _, err := ethereum.DeployLedger(ctx, opts, client, artifact)
	if err != nil {
		return "", err
	}

	return address.Hex(), nil
}
