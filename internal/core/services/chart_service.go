package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/dto"
	"github.com/shopspring/decimal"
)

// chartService maintains the chart-of-accounts hierarchy. Every create
// validates that the referenced parent exists within the same project; the
// hierarchy is append-only by construction.
type chartService struct {
	BaseService
	chartRepo   portsrepo.ChartRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewChartService creates a new ChartService.
func NewChartService(chartRepo portsrepo.ChartRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ChartSvcFacade {
	return &chartService{chartRepo: chartRepo, projectRepo: projectRepo}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// openingBalance converts and validates an opening balance magnitude.
func openingBalance(d decimal.Decimal) (domain.Money, error) {
	m, err := domain.MoneyFromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if m.IsNegative() {
		return 0, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}
	return m, nil
}

// requireProject ensures the project exists before attaching children to it.
func (s *chartService) requireProject(ctx context.Context, projectID string) error {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
		}
		return fmt.Errorf("failed to resolve project %s: %w", projectID, err)
	}
	return nil
}

// ListAccountTypes retrieves the global account type reference data.
func (s *chartService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	types, err := s.chartRepo.ListAccountTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account types")
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	return types, nil
}

// CreateLedgerGroup creates a ledger group under a project.
func (s *chartService) CreateLedgerGroup(ctx context.Context, projectID string, req dto.CreateLedgerGroupRequest) (*domain.LedgerGroup, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	accountType := domain.AccountTypeCode(req.AccountType)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	now := time.Now().UTC()
	group := domain.LedgerGroup{
		GroupID:         uuid.NewString(),
		ProjectID:       projectID,
		GroupName:       req.GroupName,
		Alias:           req.Alias,
		AccountTypeCode: accountType,
		Remarks:         req.Remarks,
		IsCashBank:      req.IsCashBank,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.chartRepo.SaveLedgerGroup(ctx, group); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: ledger group alias %q already exists in project", apperrors.ErrDuplicate, req.Alias)
		}
		s.LogError(ctx, err, "Failed to save ledger group", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to save ledger group: %w", err)
	}

	s.LogInfo(ctx, "Ledger group created successfully", slog.String("group_id", group.GroupID), slog.String("project_id", projectID))
	return &group, nil
}

// ListLedgerGroups retrieves all ledger groups of a project.
func (s *chartService) ListLedgerGroups(ctx context.Context, projectID string) ([]domain.LedgerGroup, error) {
	groups, err := s.chartRepo.ListLedgerGroups(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger groups", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list ledger groups: %w", err)
	}
	return groups, nil
}

// CreateGeneralLedger creates a general ledger under an existing group.
func (s *chartService) CreateGeneralLedger(ctx context.Context, projectID string, req dto.CreateGeneralLedgerRequest) (*domain.GeneralLedger, error) {
	// The group reference must resolve within the same project.
	if _, err := s.chartRepo.FindLedgerGroupByID(ctx, projectID, req.GroupID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ledger group %s does not exist in project", apperrors.ErrValidation, req.GroupID)
		}
		return nil, fmt.Errorf("failed to resolve ledger group %s: %w", req.GroupID, err)
	}

	opening, err := openingBalance(req.OpeningBalance)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ledger := domain.GeneralLedger{
		LedgerID:           uuid.NewString(),
		ProjectID:          projectID,
		GroupID:            req.GroupID,
		LedgerName:         req.LedgerName,
		Alias:              req.Alias,
		OpeningBalance:     opening,
		OpeningBalanceType: domain.BalanceSide(req.OpeningBalanceType),
		Description:        req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.chartRepo.SaveGeneralLedger(ctx, ledger); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: general ledger alias %q already exists in project", apperrors.ErrDuplicate, req.Alias)
		}
		s.LogError(ctx, err, "Failed to save general ledger", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to save general ledger: %w", err)
	}

	s.LogInfo(ctx, "General ledger created successfully", slog.String("ledger_id", ledger.LedgerID), slog.String("project_id", projectID))
	return &ledger, nil
}

// GetGeneralLedger retrieves one general ledger of a project.
func (s *chartService) GetGeneralLedger(ctx context.Context, projectID, ledgerID string) (*domain.GeneralLedger, error) {
	ledger, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, ledgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find general ledger", slog.String("ledger_id", ledgerID))
		}
		return nil, fmt.Errorf("failed to find general ledger %s: %w", ledgerID, err)
	}
	return ledger, nil
}

// ListGeneralLedgers retrieves all general ledgers of a project.
func (s *chartService) ListGeneralLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error) {
	ledgers, err := s.chartRepo.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list general ledgers", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list general ledgers: %w", err)
	}
	return ledgers, nil
}

// CreateSubLedger creates a sub-ledger under an existing general ledger.
func (s *chartService) CreateSubLedger(ctx context.Context, projectID string, req dto.CreateSubLedgerRequest) (*domain.SubLedger, error) {
	if _, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, req.LedgerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: general ledger %s does not exist in project", apperrors.ErrValidation, req.LedgerID)
		}
		return nil, fmt.Errorf("failed to resolve general ledger %s: %w", req.LedgerID, err)
	}

	opening, err := openingBalance(req.OpeningBalance)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	subLedger := domain.SubLedger{
		SubLedgerID:        uuid.NewString(),
		ProjectID:          projectID,
		LedgerID:           req.LedgerID,
		SubLedgerName:      req.SubLedgerName,
		Alias:              req.Alias,
		OpeningBalance:     opening,
		OpeningBalanceType: domain.BalanceSide(req.OpeningBalanceType),
		Description:        req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.chartRepo.SaveSubLedger(ctx, subLedger); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: sub-ledger alias %q already exists in project", apperrors.ErrDuplicate, req.Alias)
		}
		s.LogError(ctx, err, "Failed to save sub-ledger", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to save sub-ledger: %w", err)
	}

	s.LogInfo(ctx, "Sub-ledger created successfully", slog.String("sub_ledger_id", subLedger.SubLedgerID), slog.String("project_id", projectID))
	return &subLedger, nil
}

// GetSubLedger retrieves one sub-ledger of a project.
func (s *chartService) GetSubLedger(ctx context.Context, projectID, subLedgerID string) (*domain.SubLedger, error) {
	subLedger, err := s.chartRepo.FindSubLedgerByID(ctx, projectID, subLedgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sub-ledger", slog.String("sub_ledger_id", subLedgerID))
		}
		return nil, fmt.Errorf("failed to find sub-ledger %s: %w", subLedgerID, err)
	}
	return subLedger, nil
}

// ListSubLedgers retrieves sub-ledgers of a project.
func (s *chartService) ListSubLedgers(ctx context.Context, projectID, ledgerID string) ([]domain.SubLedger, error) {
	subLedgers, err := s.chartRepo.ListSubLedgers(ctx, projectID, ledgerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sub-ledgers", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list sub-ledgers: %w", err)
	}
	return subLedgers, nil
}

// CashBankLedgers returns the general ledgers whose group carries the
// cash/bank flag.
func (s *chartService) CashBankLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error) {
	groups, err := s.chartRepo.ListLedgerGroups(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger groups: %w", err)
	}
	cashBankGroups := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.IsCashBank {
			cashBankGroups[g.GroupID] = true
		}
	}
	if len(cashBankGroups) == 0 {
		return nil, nil
	}

	ledgers, err := s.chartRepo.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list general ledgers: %w", err)
	}
	var result []domain.GeneralLedger
	for _, l := range ledgers {
		if cashBankGroups[l.GroupID] {
			result = append(result, l)
		}
	}
	return result, nil
}
