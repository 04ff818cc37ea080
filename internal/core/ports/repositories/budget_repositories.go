package repositories

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// BudgetReader defines read operations for budget entries.
type BudgetReader interface {
	// ListBudgetEntries retrieves all budget entries of a project.
	ListBudgetEntries(ctx context.Context, projectID string) ([]domain.BudgetEntry, error)

	// ListBudgetEntriesForPeriod retrieves budget entries whose period
	// overlaps [from, to].
	ListBudgetEntriesForPeriod(ctx context.Context, projectID string, from, to domain.Date) ([]domain.BudgetEntry, error)
}

// BudgetWriter defines write operations for budget entries.
type BudgetWriter interface {
	// SaveBudgetEntry persists a new budget entry.
	SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
