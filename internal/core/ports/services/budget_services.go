package services

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/dto"
)

// BudgetSvcFacade defines operations for budget entries.
type BudgetSvcFacade interface {
	// CreateBudgetEntry records a budget allocation for a ledger and period.
	CreateBudgetEntry(ctx context.Context, projectID string, req dto.CreateBudgetEntryRequest) (*domain.BudgetEntry, error)

	// ListBudgetEntries retrieves all budget entries of a project.
	ListBudgetEntries(ctx context.Context, projectID string) ([]domain.BudgetEntry, error)
}
