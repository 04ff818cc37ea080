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
)

// budgetService manages budget allocations per ledger and period.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	chartRepo  portsrepo.ChartRepositoryFacade
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, chartRepo portsrepo.ChartRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, chartRepo: chartRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudgetEntry records a budget allocation for a ledger and period.
func (s *budgetService) CreateBudgetEntry(ctx context.Context, projectID string, req dto.CreateBudgetEntryRequest) (*domain.BudgetEntry, error) {
	logger := s.GetLogger(ctx)

	if req.PeriodTo.Before(req.PeriodFrom) {
		return nil, fmt.Errorf("%w: period end %s precedes start %s", apperrors.ErrValidation, req.PeriodTo, req.PeriodFrom)
	}
	allocated, err := domain.MoneyFromDecimal(req.Allocated)
	if err != nil {
		return nil, fmt.Errorf("%w: allocated: %v", apperrors.ErrValidation, err)
	}
	if !allocated.IsPositive() {
		return nil, fmt.Errorf("%w: allocated amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.chartRepo.FindGeneralLedgerByID(ctx, projectID, req.LedgerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: general ledger %s", apperrors.ErrValidation, req.LedgerID)
		}
		return nil, fmt.Errorf("failed to find general ledger %s: %w", req.LedgerID, err)
	}

	now := time.Now().UTC()
	entry := domain.BudgetEntry{
		BudgetID:   uuid.NewString(),
		ProjectID:  projectID,
		LedgerID:   req.LedgerID,
		PeriodFrom: req.PeriodFrom,
		PeriodTo:   req.PeriodTo,
		Allocated:  allocated,
		Remarks:    req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudgetEntry(ctx, entry); err != nil {
		logger.Error("Failed to save budget entry", slog.String("ledger_id", req.LedgerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save budget entry: %w", err)
	}

	logger.Info("Budget entry created", slog.String("budget_id", entry.BudgetID), slog.String("ledger_id", entry.LedgerID))
	return &entry, nil
}

// ListBudgetEntries retrieves all budget entries of a project.
func (s *budgetService) ListBudgetEntries(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	entries, err := s.budgetRepo.ListBudgetEntries(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget entries", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list budget entries: %w", err)
	}
	return entries, nil
}
