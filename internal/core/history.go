package core

import (
	"context"
	"fmt"

	"txledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// History reads the submission journal and settles entries left pending.
type History struct {
	logs    *zap.SugaredLogger
	journal Journal
	fetcher TransactionFetcher
}

func NewHistory(logger *zap.SugaredLogger, journal Journal, fetcher TransactionFetcher) *History {
	return &History{
		logs:    logger,
		journal: journal,
		fetcher: fetcher,
	}
}

func (h *History) Submissions(ctx context.Context, account common.Address) ([]SubmissionRecord, error) {
	submissions, err := h.journal.GetSubmissions(ctx, account.Hex())
	if err != nil {
		return nil, fmt.Errorf("get submissions: %w", err)
	}
	return toSubmissionRecords(submissions), nil
}

// Reconcile looks up the ledger transactions of pending submissions and
// marks the mined ones confirmed or reverted. Lookups that fail leave the
// submission pending.
func (h *History) Reconcile(ctx context.Context, account common.Address) ([]SubmissionRecord, error) {
	submissions, err := h.journal.GetSubmissions(ctx, account.Hex())
	if err != nil {
		return nil, fmt.Errorf("get submissions: %w", err)
	}

	byAppendHash := make(map[string]int)
	hashes := make([]string, 0)
	for i, sub := range submissions {
		if sub.Status != repository.StatusPending || sub.AppendHash == "" {
			continue
		}
		byAppendHash[sub.AppendHash] = i
		hashes = append(hashes, sub.AppendHash)
	}

	if len(hashes) == 0 {
		return toSubmissionRecords(submissions), nil
	}

	h.logs.Infow("reconciling pending submissions", "account", account.Hex(), "count", len(hashes))

	txs, err := h.fetcher.FetchTransactions(ctx, hashes)
	if err != nil {
		h.logs.Warnw("some pending submissions could not be looked up", "error", err)
	}

	for _, tx := range txs {
		i, ok := byAppendHash[tx.TransactionHash]
		if !ok {
			continue
		}

		status := repository.StatusReverted
		if tx.TransactionStatus == 1 {
			status = repository.StatusConfirmed
		}

		if err := h.journal.UpdateSubmissionStatus(ctx, submissions[i].TransferHash, status); err != nil {
			h.logs.Errorw("failed to update submission status", "error", err, "transfer_hash", submissions[i].TransferHash)
			continue
		}
		submissions[i].Status = status
	}

	return toSubmissionRecords(submissions), nil
}

func toSubmissionRecords(submissions []repository.Submission) []SubmissionRecord {
	records := make([]SubmissionRecord, len(submissions))
	for i, sub := range submissions {
		records[i] = SubmissionRecord{
			Account:      sub.Account,
			AddressTo:    sub.AddressTo,
			Amount:       sub.Amount,
			Keyword:      sub.Keyword,
			Message:      sub.Message,
			TransferHash: sub.TransferHash,
			AppendHash:   sub.AppendHash,
			Status:       sub.Status,
			CreatedAt:    sub.CreatedAt,
		}
	}
	return records
}
