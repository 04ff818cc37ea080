package repositories

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// AccountTypeReader defines read operations for the global account types.
type AccountTypeReader interface {
	// ListAccountTypes retrieves the global account type reference data.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
}

// LedgerGroupReader defines read operations for ledger groups.
type LedgerGroupReader interface {
	// FindLedgerGroupByID retrieves a ledger group within a project.
	FindLedgerGroupByID(ctx context.Context, projectID, groupID string) (*domain.LedgerGroup, error)

	// ListLedgerGroups retrieves all ledger groups of a project.
	ListLedgerGroups(ctx context.Context, projectID string) ([]domain.LedgerGroup, error)
}

// LedgerGroupWriter defines write operations for ledger groups.
type LedgerGroupWriter interface {
	// SaveLedgerGroup persists a new ledger group. Returns ErrDuplicate when
	// the alias already exists within the project.
	SaveLedgerGroup(ctx context.Context, group domain.LedgerGroup) error
}

// GeneralLedgerReader defines read operations for general ledgers.
type GeneralLedgerReader interface {
	// FindGeneralLedgerByID retrieves a general ledger within a project.
	FindGeneralLedgerByID(ctx context.Context, projectID, ledgerID string) (*domain.GeneralLedger, error)

	// FindGeneralLedgersByIDs retrieves multiple general ledgers keyed by ID.
	FindGeneralLedgersByIDs(ctx context.Context, projectID string, ledgerIDs []string) (map[string]domain.GeneralLedger, error)

	// ListGeneralLedgers retrieves all general ledgers of a project.
	ListGeneralLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error)
}

// GeneralLedgerWriter defines write operations for general ledgers.
type GeneralLedgerWriter interface {
	// SaveGeneralLedger persists a new general ledger. Returns ErrDuplicate
	// when the alias already exists within the project.
	SaveGeneralLedger(ctx context.Context, ledger domain.GeneralLedger) error
}

// SubLedgerReader defines read operations for sub-ledgers.
type SubLedgerReader interface {
	// FindSubLedgerByID retrieves a sub-ledger within a project.
	FindSubLedgerByID(ctx context.Context, projectID, subLedgerID string) (*domain.SubLedger, error)

	// FindSubLedgersByIDs retrieves multiple sub-ledgers keyed by ID.
	FindSubLedgersByIDs(ctx context.Context, projectID string, subLedgerIDs []string) (map[string]domain.SubLedger, error)

	// ListSubLedgers retrieves all sub-ledgers of a project, optionally
	// restricted to one general ledger (empty ledgerID lists all).
	ListSubLedgers(ctx context.Context, projectID, ledgerID string) ([]domain.SubLedger, error)
}

// SubLedgerWriter defines write operations for sub-ledgers.
type SubLedgerWriter interface {
	// SaveSubLedger persists a new sub-ledger. Returns ErrDuplicate when the
	// alias already exists within the project.
	SaveSubLedger(ctx context.Context, subLedger domain.SubLedger) error
}

// ChartRepositoryFacade combines all chart-of-accounts repository interfaces.
type ChartRepositoryFacade interface {
	AccountTypeReader
	LedgerGroupReader
	LedgerGroupWriter
	GeneralLedgerReader
	GeneralLedgerWriter
	SubLedgerReader
	SubLedgerWriter
}
