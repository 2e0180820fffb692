package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Artifact is the subset of a Hardhat compilation artifact needed to deploy.
type Artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

type DeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

func LoadArtifact(path string) (Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("decode artifact: %w", err)
	}

	return artifact, nil
}

// DeployLedger sends the contract creation transaction and waits until the
// contract code is present at the new address.
func DeployLedger(ctx context.Context, opts *bind.TransactOpts, backend DeployBackend, artifact Artifact) (common.Address, common.Hash, error) {
	abiJSON := LedgerABI
	if len(bytes.TrimSpace(artifact.ABI)) > 0 {
		abiJSON = string(artifact.ABI)
	}

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("parse abi: %w", err)
	}

	bytecode := common.FromHex(artifact.Bytecode)
	if len(bytecode) == 0 {
		return common.Address{}, common.Hash{}, errors.New("artifact has no bytecode")
	}

	deployOpts := *opts
	deployOpts.Context = ctx

	address, tx, _, err := bind.DeployContract(&deployOpts, parsed, bytecode, backend)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("send deployment: %w", normalize(err))
	}

	if _, err := bind.WaitDeployed(ctx, backend, tx); err != nil {
		return common.Address{}, tx.Hash(), fmt.Errorf("wait for deployment: %w", err)
	}

	return address, tx.Hash(), nil
}
