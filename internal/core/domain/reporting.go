package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal represents one canonical category with its summed expense
// magnitude and its share of total expenses.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`   // Sum of |amount| for expense entries
	Percent  decimal.Decimal `json:"percent"` // Share of total expense magnitude, 0-100
}

// BudgetStatus reports monthly budget consumption. Consumption is clamped to
// [0, 1] for progress display; RawRatio keeps the unclamped value so callers
// can report the over-budget amount.
type BudgetStatus struct {
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	MonthExpense decimal.Decimal `json:"monthExpense"`
	Consumption  decimal.Decimal `json:"consumption"`
	RawRatio     decimal.Decimal `json:"rawRatio"`
	OverBudget   decimal.Decimal `json:"overBudget"` // max(0, MonthExpense - MonthlyLimit)
	IsOverBudget bool            `json:"isOverBudget"`
}

// LedgerSummary is the full aggregate view derived from the entry log plus the
// budget value. It is recomputed from scratch on every refresh; there is no
// incremental state to invalidate.
type LedgerSummary struct {
	Balances           map[Account]decimal.Decimal `json:"balances"`
	AggregateLiquidity decimal.Decimal             `json:"aggregateLiquidity"`
	DebtAssets         decimal.Decimal             `json:"debtAssets"`      // owed to the owner
	DebtLiabilities    decimal.Decimal             `json:"debtLiabilities"` // owed by the owner
	WeekExpense        decimal.Decimal             `json:"weekExpense"`     // week-to-date, Monday start
	MonthExpense       decimal.Decimal             `json:"monthExpense"`    // month-to-date
	DailyAvgExpense    decimal.Decimal             `json:"dailyAvgExpense"`
	CategoryBreakdown  []CategoryTotal             `json:"categoryBreakdown"`
	Budget             BudgetStatus                `json:"budget"`
	GeneratedAt        time.Time                   `json:"generatedAt"`
}

// StatementRow is one exported line of the filtered log, formatted for the
// display locale by the report service.
type StatementRow struct {
	Timestamp string `json:"timestamp"` // "2006-01-02 03:04 PM" in ledger time
	Item      string `json:"item"`
	Amount    string `json:"amount"` // signed, 3 decimal places
	Account   string `json:"account"`
	Category  string `json:"category"`
	Kind      string `json:"kind"`
}
