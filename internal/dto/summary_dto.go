package dto

import (
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse represents one category slice of the expense breakdown
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"percent"`
}

// BudgetStatusResponse represents budget consumption in the summary response
type BudgetStatusResponse struct {
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	MonthExpense decimal.Decimal `json:"monthExpense"`
	Consumption  decimal.Decimal `json:"consumption"`
	RawRatio     decimal.Decimal `json:"rawRatio"`
	OverBudget   decimal.Decimal `json:"overBudget"`
	IsOverBudget bool            `json:"isOverBudget"`
}

// SummaryResponse is the dashboard aggregate view.
type SummaryResponse struct {
	Balances           map[string]decimal.Decimal `json:"balances"`
	AggregateLiquidity decimal.Decimal            `json:"aggregateLiquidity"`
	DebtAssets         decimal.Decimal            `json:"debtAssets"`
	DebtLiabilities    decimal.Decimal            `json:"debtLiabilities"`
	WeekExpense        decimal.Decimal            `json:"weekExpense"`
	MonthExpense       decimal.Decimal            `json:"monthExpense"`
	DailyAvgExpense    decimal.Decimal            `json:"dailyAvgExpense"`
	CategoryBreakdown  []CategoryTotalResponse    `json:"categoryBreakdown"`
	Budget             BudgetStatusResponse       `json:"budget"`
	GeneratedAt        string                     `json:"generatedAt"`
}

// ToSummaryResponse converts a domain.LedgerSummary to the API response shape.
func ToSummaryResponse(s domain.LedgerSummary) SummaryResponse {
	balances := make(map[string]decimal.Decimal, len(s.Balances))
	for acc, bal := range s.Balances {
		balances[string(acc)] = bal
	}
	breakdown := make([]CategoryTotalResponse, len(s.CategoryBreakdown))
	for i, ct := range s.CategoryBreakdown {
		breakdown[i] = CategoryTotalResponse{Category: ct.Category, Total: ct.Total, Percent: ct.Percent}
	}
	return SummaryResponse{
		Balances:           balances,
		AggregateLiquidity: s.AggregateLiquidity,
		DebtAssets:         s.DebtAssets,
		DebtLiabilities:    s.DebtLiabilities,
		WeekExpense:        s.WeekExpense,
		MonthExpense:       s.MonthExpense,
		DailyAvgExpense:    s.DailyAvgExpense,
		CategoryBreakdown:  breakdown,
		Budget: BudgetStatusResponse{
			MonthlyLimit: s.Budget.MonthlyLimit,
			MonthExpense: s.Budget.MonthExpense,
			Consumption:  s.Budget.Consumption,
			RawRatio:     s.Budget.RawRatio,
			OverBudget:   s.Budget.OverBudget,
			IsOverBudget: s.Budget.IsOverBudget,
		},
		GeneratedAt: s.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
}
