package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/core/services"
)

// ReportingServiceTestSuite exercises the report engine against a small but
// complete project: a cash ledger funded by capital, grant income and a
// supplies expense.
type ReportingServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockChartRepo   *MockChartRepository
	mockBudgetRepo  *MockBudgetRepository
	service         portssvc.ReportingSvcFacade
	ctx             context.Context

	projectID string
	groups    []domain.LedgerGroup
	ledgers   []domain.GeneralLedger

	cash     domain.GeneralLedger
	capital  domain.GeneralLedger
	grants   domain.GeneralLedger
	supplies domain.GeneralLedger

	from domain.Date
	to   domain.Date
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockChartRepo = new(MockChartRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	registry := services.NewChartService(suite.mockChartRepo, new(MockProjectRepository))
	suite.service = services.NewReportingService(suite.mockVoucherRepo, suite.mockChartRepo, suite.mockBudgetRepo, registry)
	suite.ctx = context.Background()

	suite.projectID = uuid.NewString()
	suite.from = domain.NewDate(2025, 4, 1)
	suite.to = domain.NewDate(2025, 4, 30)

	assetGroup := domain.LedgerGroup{GroupID: uuid.NewString(), ProjectID: suite.projectID, GroupName: "Cash & Bank", AccountTypeCode: domain.Asset, IsCashBank: true}
	equityGroup := domain.LedgerGroup{GroupID: uuid.NewString(), ProjectID: suite.projectID, GroupName: "Funds", AccountTypeCode: domain.Equity}
	incomeGroup := domain.LedgerGroup{GroupID: uuid.NewString(), ProjectID: suite.projectID, GroupName: "Grants", AccountTypeCode: domain.Income}
	expenseGroup := domain.LedgerGroup{GroupID: uuid.NewString(), ProjectID: suite.projectID, GroupName: "Operating Expenses", AccountTypeCode: domain.Expense}
	suite.groups = []domain.LedgerGroup{assetGroup, equityGroup, incomeGroup, expenseGroup}

	suite.cash = domain.GeneralLedger{
		LedgerID: uuid.NewString(), ProjectID: suite.projectID, GroupID: assetGroup.GroupID,
		LedgerName: "Cash in Hand", OpeningBalance: domain.Money(100000), OpeningBalanceType: domain.Debit,
	}
	suite.capital = domain.GeneralLedger{
		LedgerID: uuid.NewString(), ProjectID: suite.projectID, GroupID: equityGroup.GroupID,
		LedgerName: "Project Capital", OpeningBalance: domain.Money(100000), OpeningBalanceType: domain.Credit,
	}
	suite.grants = domain.GeneralLedger{
		LedgerID: uuid.NewString(), ProjectID: suite.projectID, GroupID: incomeGroup.GroupID,
		LedgerName: "Grant Income",
	}
	suite.supplies = domain.GeneralLedger{
		LedgerID: uuid.NewString(), ProjectID: suite.projectID, GroupID: expenseGroup.GroupID,
		LedgerName: "Office Supplies",
	}
	suite.ledgers = []domain.GeneralLedger{suite.cash, suite.capital, suite.grants, suite.supplies}
}

func posted(ledgerID string, debit, credit int64, date domain.Date, voucherNo int64, narration string) domain.PostedEntry {
	return domain.PostedEntry{
		JournalEntry: domain.JournalEntry{
			EntryID:      uuid.NewString(),
			LedgerID:     ledgerID,
			DebitAmount:  domain.Money(debit),
			CreditAmount: domain.Money(credit),
		},
		Date:             date,
		VoucherNo:        voucherNo,
		VoucherNarration: narration,
	}
}

// expectChartListing arms the whole-chart listings shared by the statement
// reports. No sub-ledgers exist in the fixture.
func (suite *ReportingServiceTestSuite) expectChartListing() {
	suite.mockChartRepo.On("ListLedgerGroups", suite.ctx, suite.projectID).Return(suite.groups, nil)
	suite.mockChartRepo.On("ListGeneralLedgers", suite.ctx, suite.projectID).Return(suite.ledgers, nil)
	suite.mockChartRepo.On("ListSubLedgers", suite.ctx, suite.projectID, mock.Anything).Return([]domain.SubLedger{}, nil)
}

// expectLedgerEntries returns the given entries for every entry query on the
// ledger, regardless of date bounds.
func (suite *ReportingServiceTestSuite) expectLedgerEntries(ledgerID string, entries []domain.PostedEntry) {
	suite.mockVoucherRepo.On("ListPostedEntries", suite.ctx, suite.projectID, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.LedgerID == ledgerID
	})).Return(entries, nil)
}

// expectStandardActivity arms the fixture's posted activity: a 500.00 grant
// received in cash and 200.00 of supplies paid from cash.
func (suite *ReportingServiceTestSuite) expectStandardActivity() {
	suite.expectLedgerEntries(suite.cash.LedgerID, []domain.PostedEntry{
		posted(suite.cash.LedgerID, 50000, 0, domain.NewDate(2025, 4, 10), 1, "Grant received"),
		posted(suite.cash.LedgerID, 0, 20000, domain.NewDate(2025, 4, 20), 2, "Supplies purchased"),
	})
	suite.expectLedgerEntries(suite.capital.LedgerID, []domain.PostedEntry{})
	suite.expectLedgerEntries(suite.grants.LedgerID, []domain.PostedEntry{
		posted(suite.grants.LedgerID, 0, 50000, domain.NewDate(2025, 4, 10), 1, "Grant received"),
	})
	suite.expectLedgerEntries(suite.supplies.LedgerID, []domain.PostedEntry{
		posted(suite.supplies.LedgerID, 20000, 0, domain.NewDate(2025, 4, 20), 2, "Supplies purchased"),
	})
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	suite.expectChartListing()
	suite.expectStandardActivity()

	report, err := suite.service.TrialBalance(suite.ctx, suite.projectID, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 4)

	byLedger := make(map[string]domain.TrialBalanceRow)
	for _, row := range report.Rows {
		byLedger[row.LedgerID] = row
	}
	suite.Equal(domain.Money(130000), byLedger[suite.cash.LedgerID].Debit)
	suite.Equal(domain.Money(100000), byLedger[suite.capital.LedgerID].Credit)
	suite.Equal(domain.Money(50000), byLedger[suite.grants.LedgerID].Credit)
	suite.Equal(domain.Money(20000), byLedger[suite.supplies.LedgerID].Debit)

	suite.Equal(domain.Money(150000), report.TotalDebit)
	suite.Equal(domain.Money(150000), report.TotalCredit)
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceUnbalancedOpenings() {
	// Openings entered without a matching counter-side leave the columns
	// unequal; the report says so instead of failing.
	suite.capital.OpeningBalance = domain.Money(80000)
	suite.ledgers = []domain.GeneralLedger{suite.cash, suite.capital}
	suite.expectChartListing()
	suite.expectLedgerEntries(suite.cash.LedgerID, []domain.PostedEntry{})
	suite.expectLedgerEntries(suite.capital.LedgerID, []domain.PostedEntry{})

	report, err := suite.service.TrialBalance(suite.ctx, suite.projectID, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.Money(100000), report.TotalDebit)
	suite.Equal(domain.Money(80000), report.TotalCredit)
	suite.False(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceNegativeClosingFlipsColumn() {
	// Credits against cash beyond its opening drive the asset negative; the
	// row flips to the credit column as a magnitude.
	suite.ledgers = []domain.GeneralLedger{suite.cash}
	suite.expectChartListing()
	suite.expectLedgerEntries(suite.cash.LedgerID, []domain.PostedEntry{
		posted(suite.cash.LedgerID, 0, 130000, domain.NewDate(2025, 4, 5), 1, "Large payment"),
	})

	report, err := suite.service.TrialBalance(suite.ctx, suite.projectID, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal(domain.Zero, report.Rows[0].Debit)
	suite.Equal(domain.Money(30000), report.Rows[0].Credit)
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceRequiresAsOfDate() {
	_, err := suite.service.TrialBalance(suite.ctx, suite.projectID, domain.Date{})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	suite.expectChartListing()
	suite.expectStandardActivity()

	report, err := suite.service.IncomeStatement(suite.ctx, suite.projectID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Income, 1)
	suite.Require().Len(report.Expenses, 1)
	suite.Equal(suite.grants.LedgerID, report.Income[0].LedgerID)
	suite.Equal(domain.Money(50000), report.TotalIncome)
	suite.Equal(domain.Money(20000), report.TotalExpense)
	suite.Equal(domain.Money(30000), report.NetResult)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheetIdentityHolds() {
	suite.expectChartListing()
	suite.expectStandardActivity()

	report, err := suite.service.BalanceSheet(suite.ctx, suite.projectID, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.Money(130000), report.TotalAssets)
	suite.Equal(domain.Zero, report.TotalLiabilities)
	suite.Equal(domain.Money(100000), report.TotalEquity)
	suite.Equal(domain.Money(30000), report.CurrentEarnings)
	suite.Equal(domain.Zero, report.Discrepancy)
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheetSurfacesDiscrepancy() {
	suite.capital.OpeningBalance = domain.Money(80000)
	suite.ledgers = []domain.GeneralLedger{suite.cash, suite.capital}
	suite.expectChartListing()
	suite.expectLedgerEntries(suite.cash.LedgerID, []domain.PostedEntry{})
	suite.expectLedgerEntries(suite.capital.LedgerID, []domain.PostedEntry{})

	report, err := suite.service.BalanceSheet(suite.ctx, suite.projectID, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.Money(20000), report.Discrepancy)
	suite.False(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedgerBook() {
	suite.mockChartRepo.On("FindGeneralLedgerByID", suite.ctx, suite.projectID, suite.cash.LedgerID).Return(&suite.cash, nil).Once()
	suite.mockChartRepo.On("FindLedgerGroupByID", suite.ctx, suite.projectID, suite.cash.GroupID).Return(&suite.groups[0], nil).Once()
	suite.mockVoucherRepo.On("ListPostedEntries", suite.ctx, suite.projectID, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.LedgerID == suite.cash.LedgerID && f.From == nil
	})).Return([]domain.PostedEntry{}, nil).Once()

	overridden := posted(suite.cash.LedgerID, 0, 20000, domain.NewDate(2025, 4, 20), 2, "Supplies purchased")
	overridden.Narration = "Printer paper"
	suite.mockVoucherRepo.On("ListPostedEntries", suite.ctx, suite.projectID, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.LedgerID == suite.cash.LedgerID && f.From != nil
	})).Return([]domain.PostedEntry{
		posted(suite.cash.LedgerID, 50000, 0, domain.NewDate(2025, 4, 10), 1, "Grant received"),
		overridden,
	}, nil).Once()

	book, err := suite.service.GeneralLedgerBook(suite.ctx, suite.projectID, suite.cash.LedgerID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.Money(100000), book.Opening)
	suite.Require().Len(book.Lines, 2)
	suite.Equal(domain.Money(150000), book.Lines[0].RunningBalance)
	suite.Equal("Grant received", book.Lines[0].Narration)
	suite.Equal(domain.Money(130000), book.Lines[1].RunningBalance)
	// Entry-level narration overrides the voucher narration.
	suite.Equal("Printer paper", book.Lines[1].Narration)
	suite.Equal(domain.Money(130000), book.Closing)
}

func (suite *ReportingServiceTestSuite) TestSubLedgerBook() {
	sub := domain.SubLedger{
		SubLedgerID:        uuid.NewString(),
		ProjectID:          suite.projectID,
		LedgerID:           suite.cash.LedgerID,
		SubLedgerName:      "Petty Cash",
		OpeningBalance:     domain.Money(10000),
		OpeningBalanceType: domain.Debit,
	}

	suite.mockChartRepo.On("FindSubLedgerByID", suite.ctx, suite.projectID, sub.SubLedgerID).Return(&sub, nil).Once()
	suite.mockChartRepo.On("FindGeneralLedgerByID", suite.ctx, suite.projectID, suite.cash.LedgerID).Return(&suite.cash, nil).Once()
	suite.mockChartRepo.On("FindLedgerGroupByID", suite.ctx, suite.projectID, suite.cash.GroupID).Return(&suite.groups[0], nil).Once()
	suite.mockVoucherRepo.On("ListPostedEntries", suite.ctx, suite.projectID, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.SubLedgerID == sub.SubLedgerID && f.From == nil
	})).Return([]domain.PostedEntry{}, nil).Once()
	suite.mockVoucherRepo.On("ListPostedEntries", suite.ctx, suite.projectID, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.SubLedgerID == sub.SubLedgerID && f.From != nil
	})).Return([]domain.PostedEntry{
		posted(suite.cash.LedgerID, 0, 2500, domain.NewDate(2025, 4, 12), 3, "Stationery"),
	}, nil).Once()

	book, err := suite.service.SubLedgerBook(suite.ctx, suite.projectID, sub.SubLedgerID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal("Petty Cash", book.LedgerName)
	suite.Equal(domain.Money(10000), book.Opening)
	suite.Equal(domain.Money(7500), book.Closing)
}

func (suite *ReportingServiceTestSuite) TestCashBankBook() {
	suite.expectChartListing()
	suite.mockChartRepo.On("FindGeneralLedgerByID", suite.ctx, suite.projectID, suite.cash.LedgerID).Return(&suite.cash, nil).Once()
	suite.mockChartRepo.On("FindLedgerGroupByID", suite.ctx, suite.projectID, suite.cash.GroupID).Return(&suite.groups[0], nil).Once()
	suite.expectLedgerEntries(suite.cash.LedgerID, []domain.PostedEntry{})

	book, err := suite.service.CashBankBook(suite.ctx, suite.projectID, suite.from, suite.to)

	suite.Require().NoError(err)
	// Only the cash ledger's group carries the cash/bank flag; the other
	// ledgers never get a book built.
	suite.Require().Len(book.Books, 1)
	suite.Equal(suite.cash.LedgerID, book.Books[0].LedgerID)
	suite.Equal(domain.Money(100000), book.Books[0].Opening)
	suite.mockChartRepo.AssertNotCalled(suite.T(), "FindGeneralLedgerByID", suite.ctx, suite.projectID, suite.capital.LedgerID)
}

func (suite *ReportingServiceTestSuite) TestCashBankBookNoFlaggedGroups() {
	for i := range suite.groups {
		suite.groups[i].IsCashBank = false
	}
	suite.expectChartListing()

	book, err := suite.service.CashBankBook(suite.ctx, suite.projectID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Empty(book.Books)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "ListPostedEntries", suite.ctx, suite.projectID, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestBudgetVsExpenditure() {
	suite.expectChartListing()
	suite.expectStandardActivity()
	suite.mockBudgetRepo.On("ListBudgetEntriesForPeriod", suite.ctx, suite.projectID, suite.from, suite.to).Return([]domain.BudgetEntry{
		{BudgetID: uuid.NewString(), LedgerID: suite.supplies.LedgerID, Allocated: domain.Money(30000)},
	}, nil).Once()

	report, err := suite.service.BudgetVsExpenditure(suite.ctx, suite.projectID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	row := report.Rows[0]
	suite.Equal(suite.supplies.LedgerID, row.LedgerID)
	suite.Equal(domain.Money(30000), row.Allocated)
	suite.Equal(domain.Money(20000), row.Actual)
	suite.Equal(domain.Money(10000), row.Variance)
	suite.False(row.Unbudgeted)
	suite.Equal(domain.Money(30000), report.TotalAllocated)
	suite.Equal(domain.Money(20000), report.TotalActual)
}

func (suite *ReportingServiceTestSuite) TestFundAccountabilityIncludesUnbudgetedIncome() {
	suite.expectChartListing()
	suite.expectStandardActivity()
	suite.mockBudgetRepo.On("ListBudgetEntriesForPeriod", suite.ctx, suite.projectID, suite.from, suite.to).Return([]domain.BudgetEntry{
		{BudgetID: uuid.NewString(), LedgerID: suite.supplies.LedgerID, Allocated: domain.Money(30000)},
	}, nil).Once()

	report, err := suite.service.FundAccountability(suite.ctx, suite.projectID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)

	byLedger := make(map[string]domain.BudgetVarianceRow)
	for _, row := range report.Rows {
		byLedger[row.LedgerID] = row
	}
	// Grant income posted without a budget entry still shows up, flagged.
	grantRow := byLedger[suite.grants.LedgerID]
	suite.True(grantRow.Unbudgeted)
	suite.Equal(domain.Zero, grantRow.Allocated)
	suite.Equal(domain.Money(50000), grantRow.Actual)

	suppliesRow := byLedger[suite.supplies.LedgerID]
	suite.False(suppliesRow.Unbudgeted)
	suite.Equal(domain.Money(10000), suppliesRow.Variance)
}

func (suite *ReportingServiceTestSuite) TestBudgetVarianceInvalidRange() {
	_, err := suite.service.BudgetVsExpenditure(suite.ctx, suite.projectID, suite.to, suite.from)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
