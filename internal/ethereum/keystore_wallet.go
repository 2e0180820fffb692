package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// KeystoreWallet signs with the first account of a local encrypted keystore.
// Unlocking the account is what authorizes it; until then Accounts is empty.
type KeystoreWallet struct {
	keystore   *keystore.KeyStore
	client     EthClient
	passphrase string

	mu         sync.RWMutex
	authorized []accounts.Account
}

func NewKeystoreWallet(ks *keystore.KeyStore, client EthClient, passphrase string) *KeystoreWallet {
	return &KeystoreWallet{
		keystore:   ks,
		client:     client,
		passphrase: passphrase,
	}
}

func (w *KeystoreWallet) Accounts(_ context.Context) ([]common.Address, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	addrs := make([]common.Address, 0, len(w.authorized))
	for _, acc := range w.authorized {
		addrs = append(addrs, acc.Address)
	}
	return addrs, nil
}

func (w *KeystoreWallet) RequestAccounts(_ context.Context) ([]common.Address, error) {
	accs := w.keystore.Accounts()
	if len(accs) == 0 {
		return nil, ErrNoAccount
	}

	account := accs[0]
	if err := w.keystore.Unlock(account, w.passphrase); err != nil {
		return nil, fmt.Errorf("unlock account %s: %w", account.Address.Hex(), normalize(err))
	}

	w.mu.Lock()
	w.authorized = []accounts.Account{account}
	w.mu.Unlock()

	return []common.Address{account.Address}, nil
}

func (w *KeystoreWallet) SendTransaction(ctx context.Context, req TxRequest) (common.Hash, error) {
	if req.To == nil {
		return common.Hash{}, errors.New("missing recipient")
	}

	account, err := w.account(req.From)
	if err != nil {
		return common.Hash{}, err
	}

	value := req.Value
	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := w.client.PendingNonceAt(ctx, account.Address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get nonce: %w", err)
	}

	gasPrice, err := w.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get gas price: %w", err)
	}

	gasLimit := req.Gas
	if gasLimit == 0 {
		gasLimit, err = w.client.EstimateGas(ctx, geth.CallMsg{
			From:  account.Address,
			To:    req.To,
			Value: value,
			Data:  req.Data,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("estimate gas: %w", normalize(err))
		}
	}

	chainID, err := w.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get chain id: %w", err)
	}

	tx := types.NewTransaction(nonce, *req.To, value, gasLimit, gasPrice, req.Data)

	signedTx, err := w.keystore.SignTx(account, tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", normalize(err))
	}

	if err := w.client.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", normalize(err))
	}

	return signedTx.Hash(), nil
}

func (w *KeystoreWallet) account(from common.Address) (accounts.Account, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, acc := range w.authorized {
		if acc.Address == from {
			return acc, nil
		}
	}
	return accounts.Account{}, fmt.Errorf("account %s not authorized: %w", from.Hex(), ErrUserRejected)
}
