package pgsql

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	"github.com/fundbooks/fundbooks/internal/models"
	"github.com/fundbooks/fundbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget entries.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudgetEntry persists a new budget entry.
func (r *PgxBudgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	m := mapping.ToModelBudgetEntry(entry)
	query := `
		INSERT INTO budget_entries (budget_id, project_id, ledger_id, period_from, period_to, allocated, remarks, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.ProjectID,
		m.LedgerID,
		m.PeriodFrom,
		m.PeriodTo,
		m.Allocated,
		m.Remarks,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert budget entry "+m.BudgetID, err)
	}
	return nil
}

const budgetColumns = `budget_id, project_id, ledger_id, period_from, period_to, allocated, remarks, created_at, last_updated_at`

func scanBudgetEntry(row pgx.Row) (models.BudgetEntry, error) {
	var m models.BudgetEntry
	err := row.Scan(
		&m.BudgetID,
		&m.ProjectID,
		&m.LedgerID,
		&m.PeriodFrom,
		&m.PeriodTo,
		&m.Allocated,
		&m.Remarks,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// ListBudgetEntries retrieves all budget entries of a project.
func (r *PgxBudgetRepository) ListBudgetEntries(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	query := `SELECT ` + budgetColumns + ` FROM budget_entries WHERE project_id = $1 ORDER BY period_from, created_at;`
	return r.queryBudgetEntries(ctx, query, projectID)
}

// ListBudgetEntriesForPeriod retrieves budget entries whose period overlaps
// [from, to].
func (r *PgxBudgetRepository) ListBudgetEntriesForPeriod(ctx context.Context, projectID string, from, to domain.Date) ([]domain.BudgetEntry, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budget_entries
		WHERE project_id = $1 AND period_from <= $3 AND period_to >= $2
		ORDER BY period_from, created_at;
	`
	return r.queryBudgetEntries(ctx, query, projectID, from.Time(), to.Time())
}

func (r *PgxBudgetRepository) queryBudgetEntries(ctx context.Context, query string, args ...interface{}) ([]domain.BudgetEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget entries", err)
	}
	defer rows.Close()

	entries := []models.BudgetEntry{}
	for rows.Next() {
		m, err := scanBudgetEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget entry rows", err)
	}
	return mapping.ToDomainBudgetEntrySlice(entries), nil
}
