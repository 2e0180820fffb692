package repository

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusReverted  = "reverted"
	StatusFailed    = "failed"
)

// Submission is one journaled form submit.
type Submission struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Account      string    `gorm:"size:42;not null;index"` // 0x + 40 hex chars
	AddressTo    string    `gorm:"size:42;not null"`       // Recipient of the native transfer
	Amount       string    `gorm:"size:100;not null"`      // Value in wei
	Keyword      string    `gorm:"type:text;not null;default:''"`
	Message      string    `gorm:"type:text;not null;default:''"`
	TransferHash string    `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	AppendHash   string    `gorm:"size:66"`                      // Empty when the ledger append was never sent
	Status       string    `gorm:"size:16;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}
