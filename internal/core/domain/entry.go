package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the stored classification of a ledger entry.
type Kind string

const (
	KindExpense     Kind = "expense"
	KindIncome      Kind = "income"
	KindLend        Kind = "lend"
	KindRepayIn     Kind = "repay_in"
	KindBorrow      Kind = "borrow"
	KindRepayOut    Kind = "repay_out"
	KindTransferOut Kind = "transfer_out"
	KindTransferIn  Kind = "transfer_in"
)

// StoredKinds lists every kind that may appear in the entry log.
var StoredKinds = []Kind{
	KindExpense, KindIncome,
	KindLend, KindRepayIn,
	KindBorrow, KindRepayOut,
	KindTransferOut, KindTransferIn,
}

// RequestKind is a user-facing transaction kind as produced by the classifier.
// "transfer" is never stored directly; the recorder materializes it as a
// transfer_out/transfer_in pair.
type RequestKind string

const (
	RequestExpense  RequestKind = "expense"
	RequestIncome   RequestKind = "income"
	RequestTransfer RequestKind = "transfer"
	RequestLend     RequestKind = "lend"
	RequestBorrow   RequestKind = "borrow"
	RequestRepayIn  RequestKind = "repay_in"
	RequestRepayOut RequestKind = "repay_out"
)

// IsValid reports whether k is one of the seven accepted request kinds.
func (k RequestKind) IsValid() bool {
	switch k {
	case RequestExpense, RequestIncome, RequestTransfer,
		RequestLend, RequestBorrow, RequestRepayIn, RequestRepayOut:
		return true
	}
	return false
}

// Entry represents one immutable signed money movement in the ledger.
// Amount sign encodes direction: negative is an outflow from Account,
// positive an inflow. Entries are only ever appended or bulk-deleted.
type Entry struct {
	EntryID    string          `json:"entryID"`    // Primary Key (UUID)
	TransferID string          `json:"transferID"` // Shared by both halves of a transfer pair; empty otherwise
	Item       string          `json:"item"`       // Free-text description, never empty
	Amount     decimal.Decimal `json:"amount"`     // Signed; precise decimal type
	Category   string          `json:"category"`   // Canonical category (post-normalization)
	Account    Account         `json:"account"`
	Kind       Kind            `json:"kind"`
	CreatedAt  time.Time       `json:"createdAt"` // Ledger-local fixed offset, never UTC-normalized
}
