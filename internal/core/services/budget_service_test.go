package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/core/services"
	"github.com/fundbooks/fundbooks/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockChartRepo  *MockChartRepository
	service        portssvc.BudgetSvcFacade
	ctx            context.Context

	projectID string
	ledger    domain.GeneralLedger
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockChartRepo = new(MockChartRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockChartRepo)
	suite.ctx = context.Background()

	suite.projectID = uuid.NewString()
	suite.ledger = domain.GeneralLedger{LedgerID: uuid.NewString(), ProjectID: suite.projectID, LedgerName: "Office Supplies"}
}

func (suite *BudgetServiceTestSuite) validRequest() dto.CreateBudgetEntryRequest {
	return dto.CreateBudgetEntryRequest{
		LedgerID:   suite.ledger.LedgerID,
		PeriodFrom: domain.NewDate(2025, 4, 1),
		PeriodTo:   domain.NewDate(2025, 6, 30),
		Allocated:  decimal.RequireFromString("300.00"),
		Remarks:    "Q1 supplies allocation",
	}
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry() {
	req := suite.validRequest()
	suite.mockChartRepo.On("FindGeneralLedgerByID", suite.ctx, suite.projectID, suite.ledger.LedgerID).Return(&suite.ledger, nil).Once()
	suite.mockBudgetRepo.On("SaveBudgetEntry", suite.ctx, mock.MatchedBy(func(e domain.BudgetEntry) bool {
		return e.ProjectID == suite.projectID &&
			e.LedgerID == suite.ledger.LedgerID &&
			e.Allocated == domain.Money(30000) &&
			e.BudgetID != ""
	})).Return(nil).Once()

	entry, err := suite.service.CreateBudgetEntry(suite.ctx, suite.projectID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Money(30000), entry.Allocated)
	suite.Equal(req.PeriodFrom, entry.PeriodFrom)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockChartRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntryInvertedPeriod() {
	req := suite.validRequest()
	req.PeriodFrom, req.PeriodTo = req.PeriodTo, req.PeriodFrom

	entry, err := suite.service.CreateBudgetEntry(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudgetEntry", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntryZeroAllocation() {
	req := suite.validRequest()
	req.Allocated = decimal.Zero

	_, err := suite.service.CreateBudgetEntry(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "positive")
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntryUnknownLedger() {
	req := suite.validRequest()
	suite.mockChartRepo.On("FindGeneralLedgerByID", suite.ctx, suite.projectID, suite.ledger.LedgerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateBudgetEntry(suite.ctx, suite.projectID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), suite.ledger.LedgerID)
}

func (suite *BudgetServiceTestSuite) TestListBudgetEntries() {
	entries := []domain.BudgetEntry{{BudgetID: uuid.NewString(), LedgerID: suite.ledger.LedgerID, Allocated: domain.Money(30000)}}
	suite.mockBudgetRepo.On("ListBudgetEntries", suite.ctx, suite.projectID).Return(entries, nil).Once()

	got, err := suite.service.ListBudgetEntries(suite.ctx, suite.projectID)

	suite.Require().NoError(err)
	suite.Equal(entries, got)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
