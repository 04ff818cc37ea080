package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/utils/accounting"
)

// reportingService derives every report from the chart, the posted journal
// and the budget. No report figure is ever stored. The registry supplies the
// cash/bank selection so that classification lives in one place.
type reportingService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	chartRepo   portsrepo.ChartRepositoryFacade
	budgetRepo  portsrepo.BudgetRepositoryFacade
	registry    portssvc.ChartSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(voucherRepo portsrepo.VoucherRepositoryFacade, chartRepo portsrepo.ChartRepositoryFacade, budgetRepo portsrepo.BudgetRepositoryFacade, registry portssvc.ChartSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{voucherRepo: voucherRepo, chartRepo: chartRepo, budgetRepo: budgetRepo, registry: registry}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// groupTypes maps every ledger group of the project to its account type.
func (s *reportingService) groupTypes(ctx context.Context, projectID string) (map[string]domain.LedgerGroup, error) {
	groups, err := s.chartRepo.ListLedgerGroups(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger groups: %w", err)
	}
	byID := make(map[string]domain.LedgerGroup, len(groups))
	for _, g := range groups {
		byID[g.GroupID] = g
	}
	return byID, nil
}

func (s *reportingService) periodMovement(ctx context.Context, projectID string, filter portsrepo.EntryFilter, accountType domain.AccountTypeCode) (domain.Money, error) {
	entries, err := s.voucherRepo.ListPostedEntries(ctx, projectID, filter)
	if err != nil {
		return domain.Zero, fmt.Errorf("failed to list posted entries: %w", err)
	}
	return accounting.NetMovement(entries, accountType), nil
}

// rolledOpening is the ledger's declared opening plus its sub-ledgers' openings,
// all signed per the account type's normal balance.
func (s *reportingService) rolledOpening(ctx context.Context, ledger domain.GeneralLedger, accountType domain.AccountTypeCode) (domain.Money, error) {
	normal := accountType.NormalBalance()
	opening := domain.SignedOpening(ledger.OpeningBalance, ledger.OpeningBalanceType, normal)
	subLedgers, err := s.chartRepo.ListSubLedgers(ctx, ledger.ProjectID, ledger.LedgerID)
	if err != nil {
		return domain.Zero, fmt.Errorf("failed to list sub-ledgers of %s: %w", ledger.LedgerID, err)
	}
	for _, sub := range subLedgers {
		opening = opening.Add(domain.SignedOpening(sub.OpeningBalance, sub.OpeningBalanceType, normal))
	}
	return opening, nil
}

// closingAsOf is the ledger's rolled-up signed balance through asOf inclusive.
func (s *reportingService) closingAsOf(ctx context.Context, ledger domain.GeneralLedger, accountType domain.AccountTypeCode, asOf domain.Date) (domain.Money, error) {
	opening, err := s.rolledOpening(ctx, ledger, accountType)
	if err != nil {
		return domain.Zero, err
	}
	movement, err := s.periodMovement(ctx, ledger.ProjectID, portsrepo.EntryFilter{
		LedgerID: ledger.LedgerID,
		RollUp:   true,
		To:       &asOf,
	}, accountType)
	if err != nil {
		return domain.Zero, err
	}
	return opening.Add(movement), nil
}

// buildBook assembles a book from an opening balance and the period's entries,
// carrying a running balance line by line.
func buildBook(ledgerID, ledgerName string, from, to domain.Date, opening domain.Money, entries []domain.PostedEntry, accountType domain.AccountTypeCode) *domain.LedgerBook {
	lines := make([]domain.BookLine, len(entries))
	running := opening
	for i, e := range entries {
		running = running.Add(accounting.SignedAmount(e.JournalEntry, accountType))
		lines[i] = domain.BookLine{
			Date:           e.Date,
			VoucherNo:      e.VoucherNo,
			SerialNo:       e.SerialNo,
			Narration:      e.EffectiveNarration(),
			Debit:          e.DebitAmount,
			Credit:         e.CreditAmount,
			RunningBalance: running,
		}
	}
	return &domain.LedgerBook{
		LedgerID:   ledgerID,
		LedgerName: ledgerName,
		From:       from,
		To:         to,
		Opening:    opening,
		Lines:      lines,
		Closing:    running,
	}
}

// GeneralLedgerBook lists a general ledger's direct postings with running
// balances over [from, to]. Sub-ledger postings have their own books.
func (s *reportingService) GeneralLedgerBook(ctx context.Context, projectID, ledgerID string, from, to domain.Date) (*domain.LedgerBook, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	ledger, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, ledgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find general ledger", slog.String("ledger_id", ledgerID))
		}
		return nil, fmt.Errorf("failed to find general ledger %s: %w", ledgerID, err)
	}
	group, err := s.chartRepo.FindLedgerGroupByID(ctx, projectID, ledger.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ledger group %s: %w", ledger.GroupID, err)
	}
	accountType := group.AccountTypeCode
	normal := accountType.NormalBalance()

	opening := domain.SignedOpening(ledger.OpeningBalance, ledger.OpeningBalanceType, normal)
	prior, err := s.periodMovement(ctx, projectID, portsrepo.EntryFilter{
		LedgerID: ledgerID,
		To:       datePtr(from.AddDays(-1)),
	}, accountType)
	if err != nil {
		return nil, err
	}
	opening = opening.Add(prior)

	entries, err := s.voucherRepo.ListPostedEntries(ctx, projectID, portsrepo.EntryFilter{
		LedgerID: ledgerID,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list posted entries", slog.String("ledger_id", ledgerID))
		return nil, fmt.Errorf("failed to list posted entries: %w", err)
	}

	return buildBook(ledger.LedgerID, ledger.LedgerName, from, to, opening, entries, accountType), nil
}

// SubLedgerBook lists a sub-ledger's postings with running balances.
func (s *reportingService) SubLedgerBook(ctx context.Context, projectID, subLedgerID string, from, to domain.Date) (*domain.LedgerBook, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	sub, err := s.chartRepo.FindSubLedgerByID(ctx, projectID, subLedgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sub-ledger", slog.String("sub_ledger_id", subLedgerID))
		}
		return nil, fmt.Errorf("failed to find sub-ledger %s: %w", subLedgerID, err)
	}
	ledger, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, sub.LedgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find parent ledger %s: %w", sub.LedgerID, err)
	}
	group, err := s.chartRepo.FindLedgerGroupByID(ctx, projectID, ledger.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ledger group %s: %w", ledger.GroupID, err)
	}
	accountType := group.AccountTypeCode

	opening := domain.SignedOpening(sub.OpeningBalance, sub.OpeningBalanceType, accountType.NormalBalance())
	prior, err := s.periodMovement(ctx, projectID, portsrepo.EntryFilter{
		SubLedgerID: subLedgerID,
		To:          datePtr(from.AddDays(-1)),
	}, accountType)
	if err != nil {
		return nil, err
	}
	opening = opening.Add(prior)

	entries, err := s.voucherRepo.ListPostedEntries(ctx, projectID, portsrepo.EntryFilter{
		SubLedgerID: subLedgerID,
		From:        &from,
		To:          &to,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list posted entries", slog.String("sub_ledger_id", subLedgerID))
		return nil, fmt.Errorf("failed to list posted entries: %w", err)
	}

	return buildBook(sub.SubLedgerID, sub.SubLedgerName, from, to, opening, entries, accountType), nil
}

// CashBankBook lists books for every ledger the registry classifies as
// cash/bank, in chart order.
func (s *reportingService) CashBankBook(ctx context.Context, projectID string, from, to domain.Date) (*domain.CashBankBook, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	ledgers, err := s.registry.CashBankLedgers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cash/bank ledgers: %w", err)
	}

	books := make([]domain.LedgerBook, 0, len(ledgers))
	for _, ledger := range ledgers {
		book, err := s.GeneralLedgerBook(ctx, projectID, ledger.LedgerID, from, to)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}

	s.LogInfo(ctx, "Cash/bank book generated", slog.Int("ledger_count", len(books)))
	return &domain.CashBankBook{From: from, To: to, Books: books}, nil
}

// TrialBalance lists every general ledger's rolled-up closing balance as of a
// date. A positive signed balance sits in the ledger's normal column, a
// negative one flips to the opposite column as a magnitude.
func (s *reportingService) TrialBalance(ctx context.Context, projectID string, asOf domain.Date) (*domain.TrialBalance, error) {
	if asOf.IsZero() {
		return nil, fmt.Errorf("%w: as-of date is required", apperrors.ErrValidation)
	}
	groups, err := s.groupTypes(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ledgers, err := s.chartRepo.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list general ledgers: %w", err)
	}

	report := &domain.TrialBalance{AsOf: asOf, Rows: make([]domain.TrialBalanceRow, 0, len(ledgers))}
	for _, ledger := range ledgers {
		group, ok := groups[ledger.GroupID]
		if !ok {
			return nil, fmt.Errorf("%w: ledger %s references unknown group %s", apperrors.ErrInternal, ledger.LedgerID, ledger.GroupID)
		}
		closing, err := s.closingAsOf(ctx, ledger, group.AccountTypeCode, asOf)
		if err != nil {
			return nil, err
		}

		row := domain.TrialBalanceRow{
			LedgerID:    ledger.LedgerID,
			LedgerName:  ledger.LedgerName,
			AccountType: group.AccountTypeCode,
		}
		side := group.AccountTypeCode.NormalBalance()
		if closing.IsNegative() {
			side = side.Opposite()
		}
		if side == domain.Debit {
			row.Debit = closing.Abs()
		} else {
			row.Credit = closing.Abs()
		}
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}
	report.Balanced = report.TotalDebit == report.TotalCredit

	if !report.Balanced {
		s.LogInfo(ctx, "Trial balance columns do not match",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	return report, nil
}

// IncomeStatement sums rolled-up period movement of INCOME ledgers against
// EXPENSE ledgers over [from, to]. Opening balances do not participate.
func (s *reportingService) IncomeStatement(ctx context.Context, projectID string, from, to domain.Date) (*domain.IncomeStatement, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	groups, err := s.groupTypes(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ledgers, err := s.chartRepo.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list general ledgers: %w", err)
	}

	report := &domain.IncomeStatement{From: from, To: to, Income: []domain.LedgerAmount{}, Expenses: []domain.LedgerAmount{}}
	for _, ledger := range ledgers {
		group, ok := groups[ledger.GroupID]
		if !ok {
			continue
		}
		if group.AccountTypeCode != domain.Income && group.AccountTypeCode != domain.Expense {
			continue
		}
		movement, err := s.periodMovement(ctx, projectID, portsrepo.EntryFilter{
			LedgerID: ledger.LedgerID,
			RollUp:   true,
			From:     &from,
			To:       &to,
		}, group.AccountTypeCode)
		if err != nil {
			return nil, err
		}
		amount := domain.LedgerAmount{LedgerID: ledger.LedgerID, LedgerName: ledger.LedgerName, Amount: movement}
		if group.AccountTypeCode == domain.Income {
			report.Income = append(report.Income, amount)
			report.TotalIncome = report.TotalIncome.Add(movement)
		} else {
			report.Expenses = append(report.Expenses, amount)
			report.TotalExpense = report.TotalExpense.Add(movement)
		}
	}
	report.NetResult = report.TotalIncome.Sub(report.TotalExpense)
	return report, nil
}

// BalanceSheet sums rolled-up as-of closings of ASSET ledgers against
// LIABILITY and EQUITY ledgers. CurrentEarnings carries the unclosed
// income-minus-expense result; any residual imbalance is reported as
// Discrepancy instead of being hidden.
func (s *reportingService) BalanceSheet(ctx context.Context, projectID string, asOf domain.Date) (*domain.BalanceSheet, error) {
	if asOf.IsZero() {
		return nil, fmt.Errorf("%w: as-of date is required", apperrors.ErrValidation)
	}
	groups, err := s.groupTypes(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ledgers, err := s.chartRepo.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list general ledgers: %w", err)
	}

	report := &domain.BalanceSheet{
		AsOf:        asOf,
		Assets:      []domain.LedgerAmount{},
		Liabilities: []domain.LedgerAmount{},
		Equity:      []domain.LedgerAmount{},
	}
	for _, ledger := range ledgers {
		group, ok := groups[ledger.GroupID]
		if !ok {
			continue
		}
		closing, err := s.closingAsOf(ctx, ledger, group.AccountTypeCode, asOf)
		if err != nil {
			return nil, err
		}
		amount := domain.LedgerAmount{LedgerID: ledger.LedgerID, LedgerName: ledger.LedgerName, Amount: closing}
		switch group.AccountTypeCode {
		case domain.Asset:
			report.Assets = append(report.Assets, amount)
			report.TotalAssets = report.TotalAssets.Add(closing)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amount)
			report.TotalLiabilities = report.TotalLiabilities.Add(closing)
		case domain.Equity:
			report.Equity = append(report.Equity, amount)
			report.TotalEquity = report.TotalEquity.Add(closing)
		case domain.Income:
			report.CurrentEarnings = report.CurrentEarnings.Add(closing)
		case domain.Expense:
			report.CurrentEarnings = report.CurrentEarnings.Sub(closing)
		}
	}

	report.Discrepancy = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity).Add(report.CurrentEarnings))
	report.Balanced = report.Discrepancy.IsZero()
	if !report.Balanced {
		s.LogInfo(ctx, "Balance sheet identity does not hold",
			slog.String("discrepancy", report.Discrepancy.String()))
	}
	return report, nil
}

// FundAccountability joins budget allocations against actual rolled-up
// movement for all income and expense ledgers over [from, to].
func (s *reportingService) FundAccountability(ctx context.Context, projectID string, from, to domain.Date) (*domain.BudgetVarianceReport, error) {
	return s.budgetVariance(ctx, projectID, from, to, true)
}

// BudgetVsExpenditure joins budget allocations against actual rolled-up
// movement for expense ledgers only over [from, to].
func (s *reportingService) BudgetVsExpenditure(ctx context.Context, projectID string, from, to domain.Date) (*domain.BudgetVarianceReport, error) {
	return s.budgetVariance(ctx, projectID, from, to, false)
}

func (s *reportingService) budgetVariance(ctx context.Context, projectID string, from, to domain.Date, includeIncome bool) (*domain.BudgetVarianceReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	groups, err := s.groupTypes(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ledgers, err := s.chartRepo.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list general ledgers: %w", err)
	}
	budgetEntries, err := s.budgetRepo.ListBudgetEntriesForPeriod(ctx, projectID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget entries")
		return nil, fmt.Errorf("failed to list budget entries: %w", err)
	}

	allocated := make(map[string]domain.Money, len(budgetEntries))
	budgeted := make(map[string]bool, len(budgetEntries))
	for _, b := range budgetEntries {
		allocated[b.LedgerID] = allocated[b.LedgerID].Add(b.Allocated)
		budgeted[b.LedgerID] = true
	}

	report := &domain.BudgetVarianceReport{From: from, To: to, Rows: []domain.BudgetVarianceRow{}}
	for _, ledger := range ledgers {
		group, ok := groups[ledger.GroupID]
		if !ok {
			continue
		}
		if group.AccountTypeCode != domain.Expense && !(includeIncome && group.AccountTypeCode == domain.Income) {
			continue
		}
		actual, err := s.periodMovement(ctx, projectID, portsrepo.EntryFilter{
			LedgerID: ledger.LedgerID,
			RollUp:   true,
			From:     &from,
			To:       &to,
		}, group.AccountTypeCode)
		if err != nil {
			return nil, err
		}

		alloc := allocated[ledger.LedgerID]
		// Ledgers with neither budget nor activity stay off the report.
		if alloc.IsZero() && actual.IsZero() && !budgeted[ledger.LedgerID] {
			continue
		}
		row := domain.BudgetVarianceRow{
			LedgerID:   ledger.LedgerID,
			LedgerName: ledger.LedgerName,
			Allocated:  alloc,
			Actual:     actual,
			Variance:   alloc.Sub(actual),
			Unbudgeted: !budgeted[ledger.LedgerID],
		}
		report.Rows = append(report.Rows, row)
		report.TotalAllocated = report.TotalAllocated.Add(row.Allocated)
		report.TotalActual = report.TotalActual.Add(row.Actual)
		report.TotalVariance = report.TotalVariance.Add(row.Variance)
	}
	return report, nil
}
