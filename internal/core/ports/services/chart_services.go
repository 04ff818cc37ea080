package services

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/dto"
)

// ChartSvcFacade defines operations for the chart-of-accounts registry:
// the four-level AccountType -> LedgerGroup -> GeneralLedger -> SubLedger
// hierarchy. The hierarchy is append-only; there are no update or delete
// operations.
type ChartSvcFacade interface {
	// ListAccountTypes retrieves the global account type reference data.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	// CreateLedgerGroup creates a ledger group under a project.
	CreateLedgerGroup(ctx context.Context, projectID string, req dto.CreateLedgerGroupRequest) (*domain.LedgerGroup, error)

	// ListLedgerGroups retrieves all ledger groups of a project.
	ListLedgerGroups(ctx context.Context, projectID string) ([]domain.LedgerGroup, error)

	// CreateGeneralLedger creates a general ledger under an existing group.
	CreateGeneralLedger(ctx context.Context, projectID string, req dto.CreateGeneralLedgerRequest) (*domain.GeneralLedger, error)

	// GetGeneralLedger retrieves one general ledger of a project.
	GetGeneralLedger(ctx context.Context, projectID, ledgerID string) (*domain.GeneralLedger, error)

	// ListGeneralLedgers retrieves all general ledgers of a project.
	ListGeneralLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error)

	// CreateSubLedger creates a sub-ledger under an existing general ledger.
	CreateSubLedger(ctx context.Context, projectID string, req dto.CreateSubLedgerRequest) (*domain.SubLedger, error)

	// GetSubLedger retrieves one sub-ledger of a project.
	GetSubLedger(ctx context.Context, projectID, subLedgerID string) (*domain.SubLedger, error)

	// ListSubLedgers retrieves sub-ledgers of a project, optionally
	// restricted to one general ledger (empty ledgerID lists all).
	ListSubLedgers(ctx context.Context, projectID, ledgerID string) ([]domain.SubLedger, error)

	// CashBankLedgers returns the general ledgers whose group carries the
	// cash/bank flag. This is the selection predicate for the cash/bank book.
	CashBankLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error)
}
