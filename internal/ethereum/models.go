package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type TxResult struct {
	Transaction *Transaction
	Error       error
}

type Transaction struct {
	TransactionHash   string
	TransactionStatus uint64
	BlockNumber       uint64
	From              string
	To                *string
	GasUsed           uint64
	Value             string
}

// TxRequest is a transaction as handed to a wallet. A zero Gas lets the
// wallet estimate it.
type TxRequest struct {
	From  common.Address
	To    *common.Address
	Value *big.Int
	Gas   uint64
	Data  []byte
}

// AppendRequest carries the fields of one ledger record.
type AppendRequest struct {
	From    common.Address
	To      common.Address
	Amount  *big.Int
	Keyword string
	Message string
}

// RawEntry mirrors the TransferStruct tuple returned by the ledger contract.
type RawEntry struct {
	Sender    common.Address
	Receiver  common.Address
	Amount    *big.Int
	Message   string
	Timestamp *big.Int
	Keyword   string
}
