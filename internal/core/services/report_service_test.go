package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewReportService(suite.mockRepo, testLoc, time.Second)
}

func (suite *ReportServiceTestSuite) TestStatement_FiltersInclusiveAndSortsNewestFirst() {
	ctx := context.Background()
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, testLoc)
	to := time.Date(2025, 6, 17, 0, 0, 0, 0, testLoc)
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "food", from.Add(-time.Hour)),
		entryAt(domain.KindExpense, domain.AccountCash, "-20", "food", from),
		entryAt(domain.KindIncome, domain.AccountWahda, "500", "general", time.Date(2025, 6, 14, 15, 45, 0, 0, testLoc)),
		entryAt(domain.KindExpense, domain.AccountCash, "-40", "food", to),
		entryAt(domain.KindExpense, domain.AccountCash, "-80", "food", to.Add(time.Hour)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()

	rows, err := suite.service.Statement(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("-40.000", rows[0].Amount)
	suite.Equal("500.000", rows[1].Amount)
	suite.Equal("-20.000", rows[2].Amount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestStatement_OpenBoundsReturnEverything() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "food", time.Date(2025, 6, 1, 8, 0, 0, 0, testLoc)),
		entryAt(domain.KindIncome, domain.AccountCash, "100", "general", time.Date(2025, 6, 5, 8, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()

	rows, err := suite.service.Statement(ctx, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Len(rows, 2)
}

func (suite *ReportServiceTestSuite) TestStatement_FormatsTimestampInLedgerTime() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "food", time.Date(2025, 6, 14, 15, 45, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()

	rows, err := suite.service.Statement(ctx, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Equal("2025-06-14 03:45 PM", rows[0].Timestamp)
}

func (suite *ReportServiceTestSuite) TestStatement_NormalizesCategoriesOnRead() {
	ctx := context.Background()
	entries := []domain.Entry{
		entryAt(domain.KindExpense, domain.AccountCash, "-10", "Grocery", time.Date(2025, 6, 14, 9, 0, 0, 0, testLoc)),
	}
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(entries, nil).Once()

	rows, err := suite.service.Statement(ctx, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Equal("food", rows[0].Category)
}

func (suite *ReportServiceTestSuite) TestStatement_ReadFailure() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllEntries", mock.Anything).Return(nil, assert.AnError).Once()

	rows, err := suite.service.Statement(ctx, time.Time{}, time.Time{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.Nil(rows)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
