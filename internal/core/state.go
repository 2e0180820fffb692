package core

import (
	"fmt"
	"sync"
)

// Form holds the pending transfer as typed by the user.
type Form struct {
	mu   sync.RWMutex
	data FormData
}

func NewForm() *Form {
	return &Form{}
}

// UpdateField overwrites a single field. Values are stored as given.
func (f *Form) UpdateField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldAddressTo:
		f.data.AddressTo = value
	case FieldAmount:
		f.data.Amount = value
	case FieldMessage:
		f.data.Message = value
	case FieldKeyword:
		f.data.Keyword = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (f *Form) Data() FormData {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}

func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = FormData{}
}

// LedgerCache is the last snapshot read from the ledger.
type LedgerCache struct {
	mu      sync.RWMutex
	entries []LedgerEntry
	count   uint64
}

func NewLedgerCache() *LedgerCache {
	return &LedgerCache{
		entries: []LedgerEntry{},
	}
}

func (c *LedgerCache) Entries() []LedgerEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]LedgerEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Replace swaps the snapshot for entries. Nothing is merged.
func (c *LedgerCache) Replace(entries []LedgerEntry) {
	snapshot := make([]LedgerEntry, len(entries))
	copy(snapshot, entries)

	c.mu.Lock()
	c.entries = snapshot
	c.mu.Unlock()
}

func (c *LedgerCache) Count() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

func (c *LedgerCache) SetCount(count uint64) {
	c.mu.Lock()
	c.count = count
	c.mu.Unlock()
}
