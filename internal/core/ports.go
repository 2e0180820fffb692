package core

import (
	"context"
	"math/big"

	"txledger/internal/ethereum"
	"txledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Wallet . Wallet
type Wallet interface {
	Accounts(ctx context.Context) ([]common.Address, error)
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	SendTransaction(ctx context.Context, req ethereum.TxRequest) (common.Hash, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	GetAllEntries(ctx context.Context) ([]ethereum.RawEntry, error)
	GetEntryCount(ctx context.Context) (*big.Int, error)
	AppendEntry(ctx context.Context, sender ethereum.TransactionSender, req ethereum.AppendRequest) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name CountStore . CountStore
type CountStore interface {
	LoadTransactionCount() (uint64, bool, error)
	SaveTransactionCount(count uint64) error
}

//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	SaveSubmission(ctx context.Context, submission repository.Submission) error
	UpdateSubmissionStatus(ctx context.Context, transferHash string, status string) error
	GetSubmissions(ctx context.Context, account string) ([]repository.Submission, error)
}

//counterfeiter:generate -o fake -fake-name TransactionFetcher . TransactionFetcher
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, hashes []string) ([]*ethereum.Transaction, error)
}
