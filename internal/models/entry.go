package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the database representation of a ledger entry.
// TransferID uses a pointer for the nullable transfer_id column.
type Entry struct {
	EntryID    string          `db:"entry_id"`
	TransferID *string         `db:"transfer_id"`
	Item       string          `db:"item"`
	Amount     decimal.Decimal `db:"amount"`
	Category   string          `db:"category"`
	Account    string          `db:"account"`
	Kind       string          `db:"kind"`
	CreatedAt  time.Time       `db:"created_at"`
}
