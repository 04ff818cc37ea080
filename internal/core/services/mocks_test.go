package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
)

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

// --- Mock ChartRepository ---

type MockChartRepository struct {
	mock.Mock
}

func (m *MockChartRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}

func (m *MockChartRepository) SaveLedgerGroup(ctx context.Context, group domain.LedgerGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockChartRepository) FindLedgerGroupByID(ctx context.Context, projectID, groupID string) (*domain.LedgerGroup, error) {
	args := m.Called(ctx, projectID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerGroup), args.Error(1)
}

func (m *MockChartRepository) ListLedgerGroups(ctx context.Context, projectID string) ([]domain.LedgerGroup, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerGroup), args.Error(1)
}

func (m *MockChartRepository) SaveGeneralLedger(ctx context.Context, ledger domain.GeneralLedger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockChartRepository) FindGeneralLedgerByID(ctx context.Context, projectID, ledgerID string) (*domain.GeneralLedger, error) {
	args := m.Called(ctx, projectID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralLedger), args.Error(1)
}

func (m *MockChartRepository) FindGeneralLedgersByIDs(ctx context.Context, projectID string, ledgerIDs []string) (map[string]domain.GeneralLedger, error) {
	args := m.Called(ctx, projectID, ledgerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.GeneralLedger), args.Error(1)
}

func (m *MockChartRepository) ListGeneralLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedger), args.Error(1)
}

func (m *MockChartRepository) SaveSubLedger(ctx context.Context, subLedger domain.SubLedger) error {
	args := m.Called(ctx, subLedger)
	return args.Error(0)
}

func (m *MockChartRepository) FindSubLedgerByID(ctx context.Context, projectID, subLedgerID string) (*domain.SubLedger, error) {
	args := m.Called(ctx, projectID, subLedgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubLedger), args.Error(1)
}

func (m *MockChartRepository) FindSubLedgersByIDs(ctx context.Context, projectID string, subLedgerIDs []string) (map[string]domain.SubLedger, error) {
	args := m.Called(ctx, projectID, subLedgerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SubLedger), args.Error(1)
}

func (m *MockChartRepository) ListSubLedgers(ctx context.Context, projectID, ledgerID string) ([]domain.SubLedger, error) {
	args := m.Called(ctx, projectID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubLedger), args.Error(1)
}

var _ portsrepo.ChartRepositoryFacade = (*MockChartRepository)(nil)

// --- Mock VoucherRepository ---

type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) MaxVoucherNo(ctx context.Context, projectID string) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherByNo(ctx context.Context, projectID string, voucherNo int64) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, projectID, voucherNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByProject(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.JournalVoucher, *string, error) {
	args := m.Called(ctx, projectID, limit, nextToken)
	var vouchers []domain.JournalVoucher
	if args.Get(0) != nil {
		vouchers = args.Get(0).([]domain.JournalVoucher)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return vouchers, token, args.Error(2)
}

func (m *MockVoucherRepository) ListPostedEntries(ctx context.Context, projectID string, filter portsrepo.EntryFilter) ([]domain.PostedEntry, error) {
	args := m.Called(ctx, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedEntry), args.Error(1)
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBudgetRepository) ListBudgetEntries(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetEntriesForPeriod(ctx context.Context, projectID string, from, to domain.Date) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)
