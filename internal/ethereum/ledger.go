package ethereum

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:embed ledger_abi.json
var LedgerABI string

const (
	methodAppend   = "addToBlockchain"
	methodGetAll   = "getAllTransactions"
	methodGetCount = "getTransactionCount"
)

// Ledger is a client of the deployed Transactions contract.
type Ledger struct {
	client  EthClient
	address common.Address
	abi     abi.ABI
}

func NewLedger(client EthClient, address common.Address) (*Ledger, error) {
	parsed, err := abi.JSON(strings.NewReader(LedgerABI))
	if err != nil {
		return nil, fmt.Errorf("parse ledger abi: %w", err)
	}

	return &Ledger{
		client:  client,
		address: address,
		abi:     parsed,
	}, nil
}

func (l *Ledger) Address() common.Address {
	return l.address
}

func (l *Ledger) GetAllEntries(ctx context.Context) ([]RawEntry, error) {
	values, err := l.call(ctx, methodGetAll)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s: unexpected output count %d", methodGetAll, len(values))
	}

	entries := *abi.ConvertType(values[0], new([]RawEntry)).(*[]RawEntry)
	return entries, nil
}

func (l *Ledger) GetEntryCount(ctx context.Context) (*big.Int, error) {
	values, err := l.call(ctx, methodGetCount)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s: unexpected output count %d", methodGetCount, len(values))
	}

	count, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output type %T", methodGetCount, values[0])
	}
	return count, nil
}

// AppendEntry submits an addToBlockchain call signed by sender and returns
// the transaction hash without waiting for it to be mined.
func (l *Ledger) AppendEntry(ctx context.Context, sender TransactionSender, req AppendRequest) (common.Hash, error) {
	if sender == nil {
		return common.Hash{}, errors.New("append entry: no transaction sender")
	}

	data, err := l.abi.Pack(methodAppend, req.To, req.Amount, req.Message, req.Keyword)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack %s: %w", methodAppend, err)
	}

	hash, err := sender.SendTransaction(ctx, TxRequest{
		From: req.From,
		To:   &l.address,
		Data: data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("%s: %w", methodAppend, err)
	}

	return hash, nil
}

// AwaitConfirmation blocks until the transaction is mined or ctx is done. A
// mined but failed transaction is reported as ErrReverted along with its receipt.
func (l *Ledger) AwaitConfirmation(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := bind.WaitMinedHash(ctx, l.client, hash)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", hash.Hex(), err)
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("transaction %s: %w", hash.Hex(), ErrReverted)
	}

	return receipt, nil
}

func (l *Ledger) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := l.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	out, err := l.client.CallContract(ctx, geth.CallMsg{
		To:   &l.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, normalize(err))
	}

	values, err := l.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return values, nil
}
