package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"txledger/internal/ethereum"
	"txledger/internal/repository"
	"txledger/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Submitter sends the form as a native transfer followed by a ledger record.
type Submitter struct {
	logs           *zap.SugaredLogger
	session        *Session
	form           *Form
	cache          *LedgerCache
	ledger         Ledger
	journal        Journal
	confirmTimeout time.Duration

	pending atomic.Int32

	flightMu sync.Mutex
	inFlight map[common.Address]chan struct{}
}

func NewSubmitter(
	logger *zap.SugaredLogger,
	session *Session,
	form *Form,
	cache *LedgerCache,
	ledger Ledger,
	journal Journal,
	confirmTimeout time.Duration,
) *Submitter {
	return &Submitter{
		logs:           logger,
		session:        session,
		form:           form,
		cache:          cache,
		ledger:         ledger,
		journal:        journal,
		confirmTimeout: confirmTimeout,
		inFlight:       make(map[common.Address]chan struct{}),
	}
}

// Loading reports whether a submission is waiting for confirmation.
func (s *Submitter) Loading() bool {
	return s.pending.Load() > 0
}

func (s *Submitter) Entries() []LedgerEntry {
	return s.cache.Entries()
}

// FetchAllEntries replaces the cached snapshot with the ledger's full entry list.
func (s *Submitter) FetchAllEntries(ctx context.Context) ([]LedgerEntry, error) {
	return fetchAllEntries(ctx, s.logs, s.ledger, s.cache)
}

// Submit sends the current form. Submissions for the same account are
// serialized: a second call waits for the first one to finish and then
// issues its own transfer and ledger record.
func (s *Submitter) Submit(ctx context.Context) (Receipt, error) {
	wallet := s.session.Wallet()
	if wallet == nil {
		s.logs.Warnw("no wallet available, make sure a wallet is configured")
		return Receipt{}, walletUnavailable("submit")
	}

	account, ok := s.session.Account()
	if !ok {
		return Receipt{}, ErrNotConnected
	}

	release, err := s.acquire(ctx, account)
	if err != nil {
		return Receipt{}, classify("submit", err)
	}
	defer release()

	data := s.form.Data()
	if !common.IsHexAddress(data.AddressTo) {
		return Receipt{}, fmt.Errorf("%w: recipient %q is not an address", ErrInvalidForm, data.AddressTo)
	}

	amount, err := units.ToSmallestUnit(data.Amount)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	to := common.HexToAddress(data.AddressTo)

	transferHash, err := wallet.SendTransaction(ctx, ethereum.TxRequest{
		From:  account,
		To:    &to,
		Value: amount,
		Gas:   TransferGas,
	})
	if err != nil {
		s.logs.Errorw("native transfer failed", "error", err, "from", account.Hex(), "to", to.Hex())
		return Receipt{}, classify("native transfer", err)
	}

	s.logs.Infow("native transfer sent", "hash", transferHash.Hex(), "amount", amount.String())

	submission := repository.Submission{
		Account:      account.Hex(),
		AddressTo:    to.Hex(),
		Amount:       amount.String(),
		Keyword:      data.Keyword,
		Message:      data.Message,
		TransferHash: transferHash.Hex(),
		Status:       repository.StatusPending,
	}

	appendHash, err := s.ledger.AppendEntry(ctx, wallet, ethereum.AppendRequest{
		From:    account,
		To:      to,
		Amount:  amount,
		Keyword: data.Keyword,
		Message: data.Message,
	})
	if err != nil {
		s.logs.Errorw("ledger append failed", "error", err, "transfer_hash", transferHash.Hex())
		submission.Status = repository.StatusFailed
		s.record(ctx, submission)
		return Receipt{}, classify("append entry", err)
	}

	submission.AppendHash = appendHash.Hex()
	s.record(ctx, submission)

	receipt := Receipt{
		TransferHash: transferHash.Hex(),
		AppendHash:   appendHash.Hex(),
	}

	blockNumber, err := s.awaitConfirmation(ctx, appendHash)
	if err != nil {
		s.logs.Errorw("ledger append not confirmed", "error", err, "hash", appendHash.Hex())
		switch {
		case errors.Is(err, ethereum.ErrReverted):
			s.updateStatus(ctx, submission.TransferHash, repository.StatusReverted)
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			// left pending, History.Reconcile settles it later
		default:
			s.updateStatus(ctx, submission.TransferHash, repository.StatusFailed)
		}
		return receipt, classify("await confirmation", err)
	}

	receipt.BlockNumber = blockNumber
	s.updateStatus(ctx, submission.TransferHash, repository.StatusConfirmed)
	s.logs.Infow("ledger append confirmed", "hash", appendHash.Hex(), "block", blockNumber)

	if err := s.session.RefreshCachedTransactionCount(ctx); err != nil {
		s.logs.Errorw("failed to refresh transaction count after submit", "error", err)
	}

	return receipt, nil
}

func (s *Submitter) awaitConfirmation(ctx context.Context, hash common.Hash) (uint64, error) {
	s.pending.Add(1)
	defer s.pending.Add(-1)

	if _, ok := ctx.Deadline(); !ok && s.confirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.confirmTimeout)
		defer cancel()
	}

	s.logs.Infow("waiting for confirmation", "hash", hash.Hex())

	receipt, err := s.ledger.AwaitConfirmation(ctx, hash)
	if err != nil {
		return 0, err
	}

	if receipt == nil || receipt.BlockNumber == nil {
		return 0, nil
	}
	return receipt.BlockNumber.Uint64(), nil
}

// acquire takes the single-flight token of account, waiting for ctx.
func (s *Submitter) acquire(ctx context.Context, account common.Address) (func(), error) {
	s.flightMu.Lock()
	token, ok := s.inFlight[account]
	if !ok {
		token = make(chan struct{}, 1)
		s.inFlight[account] = token
	}
	s.flightMu.Unlock()

	select {
	case token <- struct{}{}:
		return func() { <-token }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Submitter) record(ctx context.Context, submission repository.Submission) {
	if err := s.journal.SaveSubmission(ctx, submission); err != nil {
		s.logs.Errorw("failed to journal submission", "error", err, "transfer_hash", submission.TransferHash)
	}
}

func (s *Submitter) updateStatus(ctx context.Context, transferHash, status string) {
	if err := s.journal.UpdateSubmissionStatus(ctx, transferHash, status); err != nil {
		s.logs.Errorw("failed to update submission status", "error", err, "transfer_hash", transferHash, "status", status)
	}
}
