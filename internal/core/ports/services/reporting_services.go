package services

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// ReportingSvcFacade defines the report generation engine. Every report is a
// pure function of the project's chart of accounts, its posted vouchers, its
// budget entries and the requested period.
type ReportingSvcFacade interface {
	// GeneralLedgerBook lists a general ledger's entries with running
	// balances over [from, to].
	GeneralLedgerBook(ctx context.Context, projectID, ledgerID string, from, to domain.Date) (*domain.LedgerBook, error)

	// SubLedgerBook lists a sub-ledger's entries with running balances.
	SubLedgerBook(ctx context.Context, projectID, subLedgerID string, from, to domain.Date) (*domain.LedgerBook, error)

	// CashBankBook lists books for every ledger whose group carries the
	// cash/bank flag.
	CashBankBook(ctx context.Context, projectID string, from, to domain.Date) (*domain.CashBankBook, error)

	// TrialBalance lists every general ledger's rolled-up closing balance as
	// of a date, split into debit and credit columns.
	TrialBalance(ctx context.Context, projectID string, asOf domain.Date) (*domain.TrialBalance, error)

	// IncomeStatement sums period movement of INCOME and EXPENSE ledgers.
	IncomeStatement(ctx context.Context, projectID string, from, to domain.Date) (*domain.IncomeStatement, error)

	// BalanceSheet sums as-of closing balances of ASSET against
	// LIABILITY + EQUITY and surfaces any identity discrepancy.
	BalanceSheet(ctx context.Context, projectID string, asOf domain.Date) (*domain.BalanceSheet, error)

	// FundAccountability joins budget allocations against actual movement
	// for all income and expense ledgers over [from, to].
	FundAccountability(ctx context.Context, projectID string, from, to domain.Date) (*domain.BudgetVarianceReport, error)

	// BudgetVsExpenditure joins budget allocations against actual movement
	// for expense ledgers over [from, to].
	BudgetVsExpenditure(ctx context.Context, projectID string, from, to domain.Date) (*domain.BudgetVarianceReport, error)
}
