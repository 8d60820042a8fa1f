package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/utils/accounting"
	"github.com/aminfam/family_wallet_app/internal/utils/categories"
	"github.com/shopspring/decimal"
)

// expenseKinds are the kinds counted as spending for windows, the daily
// average, the category breakdown, and budget consumption.
var expenseKinds = []domain.Kind{domain.KindExpense}

var oneHundred = decimal.NewFromInt(100)

type ledgerService struct {
	entryRepo      portsrepo.EntryRepositoryFacade
	budgetSvc      portssvc.BudgetSvcFacade
	loc            *time.Location
	storageTimeout time.Duration
	now            func() time.Time
}

// LedgerOption configures a ledgerService.
type LedgerOption func(*ledgerService)

// WithLedgerClock overrides the time source, for tests.
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) { s.now = now }
}

// NewLedgerService creates the aggregator. Every view is recomputed from the
// complete entry log on each call; there is no cached or incremental state.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, budgetSvc portssvc.BudgetSvcFacade, loc *time.Location, storageTimeout time.Duration, opts ...LedgerOption) *ledgerService {
	s := &ledgerService{
		entryRepo:      entryRepo,
		budgetSvc:      budgetSvc,
		loc:            loc,
		storageTimeout: storageTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// listAll fetches the full entry snapshot with a bounded timeout. A read
// failure means the aggregation is unavailable; balances are never presented
// as zeros in that case.
func (s *ledgerService) listAll(ctx context.Context) ([]domain.Entry, error) {
	readCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	entries, err := s.entryRepo.ListAllEntries(readCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry log: %v", apperrors.ErrStorage, err)
	}
	return entries, nil
}

// Summarize derives the complete aggregate view from the entry log and the
// budget value.
func (s *ledgerService) Summarize(ctx context.Context) (*domain.LedgerSummary, error) {
	entries, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)

	balances := make(map[domain.Account]decimal.Decimal, len(domain.FixedAccounts))
	for _, acc := range domain.FixedAccounts {
		balances[acc] = decimal.Zero
	}

	liquidity := decimal.Zero
	debtAssets := decimal.Zero
	debtLiabilities := decimal.Zero
	var earliest time.Time

	for _, e := range entries {
		// Unrecognized accounts stay in the log and in exports but are
		// excluded from balances and liquidity.
		if e.Account.IsFixed() {
			balances[e.Account] = balances[e.Account].Add(e.Amount)
			liquidity = liquidity.Add(e.Amount)
		}
		debtAssets = debtAssets.Add(accounting.DebtAssetDelta(e))
		debtLiabilities = debtLiabilities.Add(accounting.DebtLiabilityDelta(e))
		if earliest.IsZero() || e.CreatedAt.Before(earliest) {
			earliest = e.CreatedAt
		}
	}

	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	weekExpense := windowSum(entries, expenseKinds, weekStart, time.Time{})
	monthExpense := windowSum(entries, expenseKinds, monthStart, time.Time{})
	totalExpense := windowSum(entries, expenseKinds, time.Time{}, time.Time{})

	// Denominator floored at one whole day so a same-day ledger never
	// divides by zero.
	days := int64(1)
	if !earliest.IsZero() {
		if d := int64(now.Sub(earliest).Hours() / 24); d > 1 {
			days = d
		}
	}
	dailyAvg := totalExpense.Div(decimal.NewFromInt(days))

	summary := &domain.LedgerSummary{
		Balances:           balances,
		AggregateLiquidity: liquidity,
		DebtAssets:         debtAssets,
		DebtLiabilities:    debtLiabilities,
		WeekExpense:        weekExpense,
		MonthExpense:       monthExpense,
		DailyAvgExpense:    dailyAvg,
		CategoryBreakdown:  categoryBreakdown(entries, totalExpense),
		GeneratedAt:        now,
	}

	limit, err := s.budgetSvc.GetBudget(ctx)
	if err != nil {
		return nil, err
	}
	summary.Budget = budgetStatus(limit, monthExpense)

	return summary, nil
}

// RecentEntries returns the latest entries, newest first.
func (s *ledgerService) RecentEntries(ctx context.Context, limit int) ([]domain.Entry, error) {
	entries, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// WindowSum sums |amount| for entries of the given kinds within
// from <= timestamp < to. Zero bounds are open.
func (s *ledgerService) WindowSum(ctx context.Context, kinds []domain.Kind, from, to time.Time) (decimal.Decimal, error) {
	entries, err := s.listAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return windowSum(entries, kinds, from, to), nil
}

// ResetAll deletes the entire entry log. Irreversible; confirmation is the
// caller's concern.
func (s *ledgerService) ResetAll(ctx context.Context) error {
	writeCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	if err := s.entryRepo.DeleteAllEntries(writeCtx); err != nil {
		return fmt.Errorf("%w: deleting entry log: %v", apperrors.ErrStorage, err)
	}
	return nil
}

func windowSum(entries []domain.Entry, kinds []domain.Kind, from, to time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if !kindIn(e.Kind, kinds) {
			continue
		}
		if !from.IsZero() && e.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !e.CreatedAt.Before(to) {
			continue
		}
		sum = sum.Add(e.Amount.Abs())
	}
	return sum
}

func kindIn(kind domain.Kind, kinds []domain.Kind) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// categoryBreakdown groups expense entries by their normalized category.
// Normalization is re-applied on read because historical categories may
// predate table updates; idempotence keeps this safe. Zero categories are
// omitted; rows sort by total descending, then name, for determinism.
func categoryBreakdown(entries []domain.Entry, totalExpense decimal.Decimal) []domain.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if !kindIn(e.Kind, expenseKinds) {
			continue
		}
		cat := categories.Normalize(e.Category)
		totals[cat] = totals[cat].Add(e.Amount.Abs())
	}

	breakdown := make([]domain.CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		if total.IsZero() {
			continue
		}
		percent := decimal.Zero
		if totalExpense.IsPositive() {
			percent = total.Div(totalExpense).Mul(oneHundred)
		}
		breakdown = append(breakdown, domain.CategoryTotal{Category: cat, Total: total, Percent: percent})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// budgetStatus computes consumption against the monthly limit. The clamped
// value drives progress display; the raw ratio and over-budget amount are
// kept for reporting. A non-positive limit reports zero consumption rather
// than dividing by it.
func budgetStatus(limit, monthExpense decimal.Decimal) domain.BudgetStatus {
	status := domain.BudgetStatus{
		MonthlyLimit: limit,
		MonthExpense: monthExpense,
		Consumption:  decimal.Zero,
		RawRatio:     decimal.Zero,
		OverBudget:   decimal.Zero,
	}
	if !limit.IsPositive() {
		return status
	}
	raw := monthExpense.Div(limit)
	status.RawRatio = raw
	status.Consumption = raw
	if status.Consumption.GreaterThan(decimal.NewFromInt(1)) {
		status.Consumption = decimal.NewFromInt(1)
	}
	if status.Consumption.IsNegative() {
		status.Consumption = decimal.Zero
	}
	if monthExpense.GreaterThan(limit) {
		status.OverBudget = monthExpense.Sub(limit)
		status.IsOverBudget = true
	}
	return status
}

// startOfWeek returns midnight of the current week's Monday in ledger time.
func startOfWeek(now time.Time) time.Time {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	day := now.AddDate(0, 0, -daysSinceMonday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// startOfMonth returns midnight of the first day of the current month.
func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
