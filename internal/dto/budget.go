package dto

import "github.com/shopspring/decimal"

// BudgetResponse returns the current monthly spending limit.
type BudgetResponse struct {
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
}

// SetBudgetRequest overwrites the monthly spending limit wholesale.
// The limit is not range-validated, matching the store's last-write-wins
// contract; non-positive limits simply disable consumption reporting.
type SetBudgetRequest struct {
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" binding:"required"`
}
