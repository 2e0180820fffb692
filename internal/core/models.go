package core

import (
	"time"

	"txledger/internal/ethereum"
	"txledger/pkg/units"
)

const (
	FieldAddressTo = "addressTo"
	FieldAmount    = "amount"
	FieldMessage   = "message"
	FieldKeyword   = "keyword"
)

// TransferGas is the fixed gas allowance of a plain value transfer (0x5208).
const TransferGas uint64 = 21000

const TimestampLayout = "1/2/2006, 3:04:05 PM"

type FormData struct {
	AddressTo string `json:"addressTo"`
	Amount    string `json:"amount"`
	Message   string `json:"message"`
	Keyword   string `json:"keyword"`
}

type LedgerEntry struct {
	AddressTo   string `json:"addressTo"`
	AddressFrom string `json:"addressFrom"`
	Timestamp   string `json:"timestamp"`
	Message     string `json:"message"`
	Keyword     string `json:"keyword"`
	Amount      string `json:"amount"`
}

type Receipt struct {
	TransferHash string `json:"transferHash"`
	AppendHash   string `json:"appendHash"`
	BlockNumber  uint64 `json:"blockNumber"`
}

// TransactionCounts reports the locally cached count next to the count read
// from the ledger. The two are never reconciled.
type TransactionCounts struct {
	Cached       uint64 `json:"cached"`
	CachedExists bool   `json:"cachedExists"`
	Ledger       uint64 `json:"ledger"`
}

type SubmissionRecord struct {
	Account      string    `json:"account"`
	AddressTo    string    `json:"addressTo"`
	Amount       string    `json:"amount"`
	Keyword      string    `json:"keyword"`
	Message      string    `json:"message"`
	TransferHash string    `json:"transferHash"`
	AppendHash   string    `json:"appendHash"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toLedgerEntry(raw ethereum.RawEntry) LedgerEntry {
	var ts int64
	if raw.Timestamp != nil {
		ts = raw.Timestamp.Int64()
	}

	return LedgerEntry{
		AddressTo:   raw.Receiver.Hex(),
		AddressFrom: raw.Sender.Hex(),
		Timestamp:   time.Unix(ts, 0).UTC().Format(TimestampLayout),
		Message:     raw.Message,
		Keyword:     raw.Keyword,
		Amount:      units.FromSmallestUnit(raw.Amount),
	}
}
