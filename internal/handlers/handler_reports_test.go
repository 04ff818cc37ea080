package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/handlers"
	"github.com/fundbooks/fundbooks/internal/platform/config"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GeneralLedgerBook(ctx context.Context, projectID, ledgerID string, from, to domain.Date) (*domain.LedgerBook, error) {
	args := m.Called(ctx, projectID, ledgerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerBook), args.Error(1)
}

func (m *MockReportingService) SubLedgerBook(ctx context.Context, projectID, subLedgerID string, from, to domain.Date) (*domain.LedgerBook, error) {
	args := m.Called(ctx, projectID, subLedgerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerBook), args.Error(1)
}

func (m *MockReportingService) CashBankBook(ctx context.Context, projectID string, from, to domain.Date) (*domain.CashBankBook, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankBook), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context, projectID string, asOf domain.Date) (*domain.TrialBalance, error) {
	args := m.Called(ctx, projectID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, projectID string, from, to domain.Date) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, projectID string, asOf domain.Date) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, projectID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) FundAccountability(ctx context.Context, projectID string, from, to domain.Date) (*domain.BudgetVarianceReport, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetVarianceReport), args.Error(1)
}

func (m *MockReportingService) BudgetVsExpenditure(ctx context.Context, projectID string, from, to domain.Date) (*domain.BudgetVarianceReport, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetVarianceReport), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportsHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	projectID            string
}

func (suite *ReportsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockReportingService = new(MockReportingService)
	services := &portssvc.ServicesProvider{ReportingSvc: suite.mockReportingService}
	handlers.RegisterRoutes(suite.router, &config.Config{}, services)

	suite.projectID = uuid.NewString()
}

func (suite *ReportsHandlerTestSuite) reportURL(name, query string) string {
	return fmt.Sprintf("/api/v1/projects/%s/reports/%s%s", suite.projectID, name, query)
}

func (suite *ReportsHandlerTestSuite) TestTrialBalance_FromToRange() {
	// The trial balance takes the same from/to pair as the other period
	// reports and runs as of the range end.
	asOf := domain.NewDate(2025, 4, 30)
	report := &domain.TrialBalance{AsOf: asOf, Rows: []domain.TrialBalanceRow{}, Balanced: true}
	suite.mockReportingService.On("TrialBalance", mock.Anything, suite.projectID, asOf).Return(report, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, suite.reportURL("trial-balance", "?from=2025-04-01&to=2025-04-30"), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.TrialBalance
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(asOf, resp.AsOf)
	suite.True(resp.Balanced)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportsHandlerTestSuite) TestTrialBalance_MissingRange() {
	req, _ := http.NewRequest(http.MethodGet, suite.reportURL("trial-balance", ""), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportsHandlerTestSuite) TestBalanceSheet_AsOfDate() {
	asOf := domain.NewDate(2025, 4, 30)
	report := &domain.BalanceSheet{AsOf: asOf, Balanced: true}
	suite.mockReportingService.On("BalanceSheet", mock.Anything, suite.projectID, asOf).Return(report, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, suite.reportURL("balance-sheet", "?asOfDate=2025-04-30"), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportsHandlerTestSuite) TestIncomeStatement_InvalidDate() {
	req, _ := http.NewRequest(http.MethodGet, suite.reportURL("income-statement", "?from=2025-04-01&to=notadate"), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "IncomeStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportsHandlerTestSuite))
}
