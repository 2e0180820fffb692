package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Session tracks the wallet connection and the active account. Once an
// account is connected it stays connected for the life of the process.
type Session struct {
	logs   *zap.SugaredLogger
	wallet Wallet
	ledger Ledger
	store  CountStore
	cache  *LedgerCache

	mu        sync.RWMutex
	account   common.Address
	connected bool
}

// NewSession creates a session. A nil wallet means no wallet is available.
func NewSession(logger *zap.SugaredLogger, wallet Wallet, ledger Ledger, store CountStore, cache *LedgerCache) *Session {
	return &Session{
		logs:   logger,
		wallet: wallet,
		ledger: ledger,
		store:  store,
		cache:  cache,
	}
}

func (s *Session) Wallet() Wallet {
	return s.wallet
}

func (s *Session) Account() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account, s.connected
}

// CheckConnection picks up an account the wallet has already authorized,
// without prompting, and refreshes the ledger snapshot when one is found.
func (s *Session) CheckConnection(ctx context.Context) error {
	if s.wallet == nil {
		s.logs.Warnw("no wallet available, make sure a wallet is configured")
		return walletUnavailable("check connection")
	}

	accounts, err := s.wallet.Accounts(ctx)
	if err != nil {
		s.logs.Errorw("failed to list authorized accounts", "error", err)
		return classify("check connection", err)
	}

	s.logs.Infow("authorized accounts", "accounts", accounts)

	if len(accounts) == 0 {
		s.logs.Infow("no authorized account found")
		return nil
	}

	s.setAccount(accounts[0])

	if _, err := fetchAllEntries(ctx, s.logs, s.ledger, s.cache); err != nil {
		s.logs.Errorw("failed to refresh ledger entries", "error", err)
	}

	return nil
}

// RequestConnection asks the wallet to authorize an account.
func (s *Session) RequestConnection(ctx context.Context) (common.Address, error) {
	if s.wallet == nil {
		s.logs.Warnw("no wallet available, make sure a wallet is configured")
		return common.Address{}, walletUnavailable("request connection")
	}

	accounts, err := s.wallet.RequestAccounts(ctx)
	if err != nil {
		s.logs.Errorw("account authorization failed", "error", err)
		return common.Address{}, classify("request connection", err)
	}

	if len(accounts) == 0 {
		s.logs.Errorw("wallet authorized no account")
		return common.Address{}, &Error{Op: "request connection", Kind: ErrUserRejected}
	}

	s.setAccount(accounts[0])
	s.logs.Infow("wallet connected", "account", accounts[0].Hex())

	return accounts[0], nil
}

// RefreshCachedTransactionCount reads the ledger entry count and stores it
// locally, overwriting the previous value.
func (s *Session) RefreshCachedTransactionCount(ctx context.Context) error {
	count, err := s.ledger.GetEntryCount(ctx)
	if err != nil {
		s.logs.Errorw("failed to read ledger entry count", "error", err)
		return classify("refresh transaction count", err)
	}

	s.cache.SetCount(count.Uint64())

	if err := s.store.SaveTransactionCount(count.Uint64()); err != nil {
		s.logs.Errorw("failed to store transaction count", "error", err, "count", count.Uint64())
		return fmt.Errorf("store transaction count: %w", err)
	}

	return nil
}

// LoadCachedTransactionCount seeds the in-memory count from the local store.
func (s *Session) LoadCachedTransactionCount() error {
	count, ok, err := s.store.LoadTransactionCount()
	if err != nil {
		return fmt.Errorf("load transaction count: %w", err)
	}
	if ok {
		s.cache.SetCount(count)
	}
	return nil
}

// TransactionCounts returns the stored count and a fresh ledger count side by side.
func (s *Session) TransactionCounts(ctx context.Context) (TransactionCounts, error) {
	cached, ok, err := s.store.LoadTransactionCount()
	if err != nil {
		return TransactionCounts{}, fmt.Errorf("load transaction count: %w", err)
	}

	count, err := s.ledger.GetEntryCount(ctx)
	if err != nil {
		return TransactionCounts{}, classify("read ledger count", err)
	}

	return TransactionCounts{
		Cached:       cached,
		CachedExists: ok,
		Ledger:       count.Uint64(),
	}, nil
}

func (s *Session) setAccount(account common.Address) {
	s.mu.Lock()
	s.account = account
	s.connected = true
	s.mu.Unlock()
}

func fetchAllEntries(ctx context.Context, logs *zap.SugaredLogger, ledger Ledger, cache *LedgerCache) ([]LedgerEntry, error) {
	raw, err := ledger.GetAllEntries(ctx)
	if err != nil {
		logs.Errorw("failed to read ledger entries", "error", err)
		return nil, classify("fetch entries", err)
	}

	entries := make([]LedgerEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, toLedgerEntry(r))
	}

	cache.Replace(entries)
	logs.Infow("ledger entries refreshed", "count", len(entries))

	return entries, nil
}
