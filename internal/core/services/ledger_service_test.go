package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBudgetService) SetBudget(ctx context.Context, limit decimal.Decimal) error {
	args := m.Called(ctx, limit)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockEntryRepository
	mockBudget *MockBudgetService
	service    portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.mockBudget = new(MockBudgetService)
	// 2025-06-18 is a Wednesday; ledger-local now is 16:30.
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockBudget, testLoc, time.Second, services.WithLedgerClock(fixedClock))
}

func entryAt(kind domain.Kind, account domain.Account, amount string, category string, at time.Time) domain.Entry {
	amt, _ := decimal.NewFromString(amount)
	return domain.Entry{
		EntryID:   uuid.NewString(),
		Item:      "test",
		Amount:    amt,
		Category:  category,
		Account:   account,
		Kind:      kind,
		CreatedAt: at,
	}
}

func (suite *LedgerServiceTestSuite) TestSummarize_BalancesAndBudget() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindIncome, domain.AccountCash, "1000", "general", time.Date(2025, 6, 10, 16, 30, 0, 0, testLoc)),
		entryAt(domain.KindExpense, domain.AccountCash, "-50", "food", time.Date(2025, 6, 17, 12, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.Balances[domain.AccountCash].Equal(decimal.NewFromInt(950)))
	suite.True(summary.Balances[domain.AccountWahda].IsZero())
	suite.True(summary.Balances[domain.AccountNAB].IsZero())
	suite.True(summary.AggregateLiquidity.Equal(decimal.NewFromInt(950)))
	suite.True(summary.MonthExpense.Equal(decimal.NewFromInt(50)))
	suite.True(summary.WeekExpense.Equal(decimal.NewFromInt(50)))
	suite.True(summary.Budget.Consumption.Equal(decimal.NewFromFloat(0.1)))
	suite.False(summary.Budget.IsOverBudget)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockBudget.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSummarize_TransferPairNetsToZero() {
	ctx := context.Background()
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, testLoc)
	transferID := uuid.NewString()
	out := entryAt(domain.KindTransferOut, domain.AccountWahda, "-200", "transfers", at)
	out.TransferID = transferID
	in := entryAt(domain.KindTransferIn, domain.AccountCash, "200", "transfers", at)
	in.TransferID = transferID

	suite.mockRepo.On("ListAllEntries", mock.Anything).Return([]domain.Entry{out, in}, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.Balances[domain.AccountWahda].Equal(decimal.NewFromInt(-200)))
	suite.True(summary.Balances[domain.AccountCash].Equal(decimal.NewFromInt(200)))
	suite.True(summary.AggregateLiquidity.IsZero())
	// Transfers are not spending.
	suite.True(summary.MonthExpense.IsZero())
	suite.Empty(summary.CategoryBreakdown)
}

func (suite *LedgerServiceTestSuite) TestSummarize_UnknownAccountExcludedFromBalances() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.Account("Revolut"), "-30", "shopping", time.Date(2025, 6, 17, 9, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.AggregateLiquidity.IsZero())
	suite.Len(summary.Balances, 3)
	// The entry still counts as spending.
	suite.True(summary.MonthExpense.Equal(decimal.NewFromInt(30)))
}

func (suite *LedgerServiceTestSuite) TestSummarize_DebtPositions() {
	ctx := context.Background()
	at := time.Date(2025, 6, 12, 11, 0, 0, 0, testLoc)
	entries := []domain.Entry{
		entryAt(domain.KindLend, domain.AccountCash, "-50", "debt", at),
		entryAt(domain.KindRepayIn, domain.AccountCash, "20", "debt", at),
		entryAt(domain.KindBorrow, domain.AccountCash, "40", "debt", at),
		entryAt(domain.KindRepayOut, domain.AccountCash, "-40", "debt", at),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.DebtAssets.Equal(decimal.NewFromInt(30)))
	suite.True(summary.DebtLiabilities.IsZero())
}

func (suite *LedgerServiceTestSuite) TestSummarize_DailyAverageFloorsAtOneDay() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-60", "food", time.Date(2025, 6, 18, 10, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.DailyAvgExpense.Equal(decimal.NewFromInt(60)))
}

func (suite *LedgerServiceTestSuite) TestSummarize_DailyAverageOverSpan() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-40", "food", time.Date(2025, 6, 10, 16, 30, 0, 0, testLoc)),
		entryAt(domain.KindExpense, domain.AccountCash, "-40", "food", time.Date(2025, 6, 17, 12, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	// Eight whole days between the earliest entry and now.
	suite.True(summary.DailyAvgExpense.Equal(decimal.NewFromInt(10)))
}

func (suite *LedgerServiceTestSuite) TestSummarize_WeekStartsMonday() {
	ctx := context.Background()
	entries := []domain.Entry{
		// Sunday June 15: previous week.
		entryAt(domain.KindExpense, domain.AccountCash, "-100", "food", time.Date(2025, 6, 15, 23, 0, 0, 0, testLoc)),
		// Monday June 16: current week.
		entryAt(domain.KindExpense, domain.AccountCash, "-25", "food", time.Date(2025, 6, 16, 0, 30, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.WeekExpense.Equal(decimal.NewFromInt(25)))
	suite.True(summary.MonthExpense.Equal(decimal.NewFromInt(125)))
}

func (suite *LedgerServiceTestSuite) TestSummarize_CategoryBreakdownSortedAndNormalized() {
	ctx := context.Background()
	at := time.Date(2025, 6, 17, 12, 0, 0, 0, testLoc)
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-30", "FOOD", at),
		entryAt(domain.KindExpense, domain.AccountCash, "-60", "transport", at),
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "food", at),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summary.CategoryBreakdown, 2)
	suite.Equal("transport", summary.CategoryBreakdown[0].Category)
	suite.True(summary.CategoryBreakdown[0].Total.Equal(decimal.NewFromInt(60)))
	suite.True(summary.CategoryBreakdown[0].Percent.Equal(decimal.NewFromInt(60)))
	suite.Equal("food", summary.CategoryBreakdown[1].Category)
	suite.True(summary.CategoryBreakdown[1].Total.Equal(decimal.NewFromInt(40)))
}

func (suite *LedgerServiceTestSuite) TestSummarize_OverBudget() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-600", "shopping", time.Date(2025, 6, 17, 12, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.NewFromInt(500), nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.Budget.IsOverBudget)
	suite.True(summary.Budget.Consumption.Equal(decimal.NewFromInt(1)))
	suite.True(summary.Budget.RawRatio.Equal(decimal.NewFromFloat(1.2)))
	suite.True(summary.Budget.OverBudget.Equal(decimal.NewFromInt(100)))
}

func (suite *LedgerServiceTestSuite) TestSummarize_NonPositiveLimitDisablesConsumption() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-600", "shopping", time.Date(2025, 6, 17, 12, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()
	suite.mockBudget.On("GetBudget", mock.Anything).Return(decimal.Zero, nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.True(summary.Budget.Consumption.IsZero())
	suite.True(summary.Budget.RawRatio.IsZero())
	suite.False(summary.Budget.IsOverBudget)
}

func (suite *LedgerServiceTestSuite) TestSummarize_ReadFailureIsUnavailableNotZeros() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(nil, assert.AnError).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.Nil(summary)
	suite.mockBudget.AssertNotCalled(suite.T(), "GetBudget", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecentEntries_SortedAndTruncated() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "food", time.Date(2025, 6, 10, 8, 0, 0, 0, testLoc)),
		entryAt(domain.KindExpense, domain.AccountCash, "-20", "food", time.Date(2025, 6, 17, 8, 0, 0, 0, testLoc)),
		entryAt(domain.KindExpense, domain.AccountCash, "-30", "food", time.Date(2025, 6, 12, 8, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()

	recent, err := suite.service.RecentEntries(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(recent, 2)
	suite.True(recent[0].Amount.Equal(decimal.NewFromInt(-20)))
	suite.True(recent[1].Amount.Equal(decimal.NewFromInt(-30)))
}

func (suite *LedgerServiceTestSuite) TestWindowSum_HalfOpenBounds() {
	ctx := context.Background()
	from := time.Date(2025, 6, 16, 0, 0, 0, 0, testLoc)
	to := time.Date(2025, 6, 18, 0, 0, 0, 0, testLoc)
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "food", from.Add(-time.Minute)),
		entryAt(domain.KindExpense, domain.AccountCash, "-20", "food", from),
		entryAt(domain.KindExpense, domain.AccountCash, "-40", "food", to.Add(-time.Minute)),
		entryAt(domain.KindExpense, domain.AccountCash, "-80", "food", to),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()

	sum, err := suite.service.WindowSum(ctx, []domain.Kind{domain.KindExpense}, from, to)

	suite.Require().NoError(err)
	suite.True(sum.Equal(decimal.NewFromInt(60)))
}

func (suite *LedgerServiceTestSuite) TestResetAll() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteAllEntries", mock.Anything).Return(nil).Once()

	err := suite.service.ResetAll(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestResetAll_Failure() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteAllEntries", mock.Anything).Return(assert.AnError).Once()

	err := suite.service.ResetAll(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
