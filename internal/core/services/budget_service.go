package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// budgetSettingKey is the settings-store key holding the monthly limit.
const budgetSettingKey = "monthly_budget_limit"

// DefaultMonthlyLimit applies until the owner sets a limit.
var DefaultMonthlyLimit = decimal.NewFromInt(1000)

type budgetService struct {
	settingsRepo   portsrepo.SettingsRepositoryFacade
	storageTimeout time.Duration
}

// NewBudgetService creates the store for the single mutable monthly limit.
func NewBudgetService(settingsRepo portsrepo.SettingsRepositoryFacade, storageTimeout time.Duration) *budgetService {
	return &budgetService{settingsRepo: settingsRepo, storageTimeout: storageTimeout}
}

// GetBudget returns the monthly limit, lazily creating it with the default on
// first read.
func (s *budgetService) GetBudget(ctx context.Context) (decimal.Decimal, error) {
	readCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	raw, ok, err := s.settingsRepo.Get(readCtx, budgetSettingKey)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: reading budget: %v", apperrors.ErrStorage, err)
	}
	if !ok {
		// Lazy creation; the read still succeeds if the write-back fails.
		_ = s.settingsRepo.Set(readCtx, budgetSettingKey, DefaultMonthlyLimit.String())
		return DefaultMonthlyLimit, nil
	}

	limit, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: stored budget %q is not a decimal: %v", apperrors.ErrStorage, raw, err)
	}
	return limit, nil
}

// SetBudget overwrites the limit unconditionally, last write wins. Negative
// and zero limits are stored as-is; consumption reporting guards against them.
func (s *budgetService) SetBudget(ctx context.Context, limit decimal.Decimal) error {
	writeCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	if err := s.settingsRepo.Set(writeCtx, budgetSettingKey, limit.String()); err != nil {
		return fmt.Errorf("%w: writing budget: %v", apperrors.ErrStorage, err)
	}
	return nil
}
