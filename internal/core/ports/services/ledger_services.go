package services

import (
	"context"
	"time"

	"github.com/aminfam/family_wallet_app/internal/core/domain"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/shopspring/decimal"
)

// RecorderSvcFacade validates a candidate transaction, applies the sign
// conventions, and appends it to the log. A transfer candidate yields exactly
// two entries; everything else yields one. Failure never partially appends.
type RecorderSvcFacade interface {
	Record(ctx context.Context, candidate dto.CandidateTransaction) ([]domain.Entry, error)
}

// LedgerSvcFacade derives every displayed view from the full entry log. All
// computations are pure functions of the snapshot plus the budget value.
type LedgerSvcFacade interface {
	// Summarize recomputes the complete aggregate view from scratch.
	Summarize(ctx context.Context) (*domain.LedgerSummary, error)

	// RecentEntries returns the latest entries sorted by timestamp descending.
	RecentEntries(ctx context.Context, limit int) ([]domain.Entry, error)

	// WindowSum sums |amount| over entries matching one of the kinds with
	// from <= timestamp < to. A zero `to` means no upper bound.
	WindowSum(ctx context.Context, kinds []domain.Kind, from, to time.Time) (decimal.Decimal, error)

	// ResetAll deletes the entire entry log. Irreversible.
	ResetAll(ctx context.Context) error
}

// BudgetSvcFacade reads and overwrites the single monthly spending limit.
type BudgetSvcFacade interface {
	GetBudget(ctx context.Context) (decimal.Decimal, error)
	SetBudget(ctx context.Context, limit decimal.Decimal) error
}

// ReportSvcFacade turns a filtered slice of the log into display-locale rows.
type ReportSvcFacade interface {
	Statement(ctx context.Context, from, to time.Time) ([]domain.StatementRow, error)
}

// ClassifierSvcFacade is the opaque natural-language / image classifier. A
// malformed model response surfaces as apperrors.ErrClassification, never as a
// crash, and the recorder is not invoked.
type ClassifierSvcFacade interface {
	ClassifyText(ctx context.Context, text string) (*dto.CandidateTransaction, error)
	ClassifyImage(ctx context.Context, mimeType string, data []byte) (*dto.CandidateTransaction, error)
}
