package pgsql

import (
	"context"
	"errors"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	"github.com/fundbooks/fundbooks/internal/models"
	"github.com/fundbooks/fundbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChartRepository struct {
	BaseRepository
}

// newPgxChartRepository creates a new repository for the chart of accounts.
func newPgxChartRepository(pool *pgxpool.Pool) portsrepo.ChartRepositoryFacade {
	return &PgxChartRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ChartRepositoryFacade = (*PgxChartRepository)(nil)

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ListAccountTypes retrieves the global account type reference data.
func (r *PgxChartRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	query := `SELECT code, name FROM account_types ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account types", err)
	}
	defer rows.Close()

	types := []domain.AccountType{}
	for rows.Next() {
		var m models.AccountType
		if err := rows.Scan(&m.Code, &m.Name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account type row", err)
		}
		types = append(types, mapping.ToDomainAccountType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account type rows", err)
	}
	return types, nil
}

// SaveLedgerGroup persists a new ledger group.
func (r *PgxChartRepository) SaveLedgerGroup(ctx context.Context, group domain.LedgerGroup) error {
	m := mapping.ToModelLedgerGroup(group)
	query := `
		INSERT INTO ledger_groups (group_id, project_id, group_name, alias, account_type_code, remarks, is_cash_bank, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GroupID,
		m.ProjectID,
		m.GroupName,
		m.Alias,
		m.AccountTypeCode,
		m.Remarks,
		m.IsCashBank,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert ledger group "+m.GroupID, err)
	}
	return nil
}

// FindLedgerGroupByID retrieves a ledger group within a project.
func (r *PgxChartRepository) FindLedgerGroupByID(ctx context.Context, projectID, groupID string) (*domain.LedgerGroup, error) {
	query := `
		SELECT group_id, project_id, group_name, alias, account_type_code, remarks, is_cash_bank, created_at, last_updated_at
		FROM ledger_groups
		WHERE project_id = $1 AND group_id = $2;
	`
	var m models.LedgerGroup
	err := r.Pool.QueryRow(ctx, query, projectID, groupID).Scan(
		&m.GroupID,
		&m.ProjectID,
		&m.GroupName,
		&m.Alias,
		&m.AccountTypeCode,
		&m.Remarks,
		&m.IsCashBank,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger group by ID "+groupID, err)
	}
	group := mapping.ToDomainLedgerGroup(m)
	return &group, nil
}

// ListLedgerGroups retrieves all ledger groups of a project.
func (r *PgxChartRepository) ListLedgerGroups(ctx context.Context, projectID string) ([]domain.LedgerGroup, error) {
	query := `
		SELECT group_id, project_id, group_name, alias, account_type_code, remarks, is_cash_bank, created_at, last_updated_at
		FROM ledger_groups
		WHERE project_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger groups for project "+projectID, err)
	}
	defer rows.Close()

	groups := []models.LedgerGroup{}
	for rows.Next() {
		var m models.LedgerGroup
		if err := rows.Scan(
			&m.GroupID,
			&m.ProjectID,
			&m.GroupName,
			&m.Alias,
			&m.AccountTypeCode,
			&m.Remarks,
			&m.IsCashBank,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger group row", err)
		}
		groups = append(groups, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger group rows", err)
	}
	return mapping.ToDomainLedgerGroupSlice(groups), nil
}

// SaveGeneralLedger persists a new general ledger.
func (r *PgxChartRepository) SaveGeneralLedger(ctx context.Context, ledger domain.GeneralLedger) error {
	m := mapping.ToModelGeneralLedger(ledger)
	query := `
		INSERT INTO general_ledgers (ledger_id, project_id, group_id, ledger_name, alias, opening_balance, opening_balance_type, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LedgerID,
		m.ProjectID,
		m.GroupID,
		m.LedgerName,
		m.Alias,
		m.OpeningBalance,
		m.OpeningBalanceType,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert general ledger "+m.LedgerID, err)
	}
	return nil
}

const generalLedgerColumns = `ledger_id, project_id, group_id, ledger_name, alias, opening_balance, opening_balance_type, description, created_at, last_updated_at`

func scanGeneralLedger(row pgx.Row) (models.GeneralLedger, error) {
	var m models.GeneralLedger
	err := row.Scan(
		&m.LedgerID,
		&m.ProjectID,
		&m.GroupID,
		&m.LedgerName,
		&m.Alias,
		&m.OpeningBalance,
		&m.OpeningBalanceType,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindGeneralLedgerByID retrieves a general ledger within a project.
func (r *PgxChartRepository) FindGeneralLedgerByID(ctx context.Context, projectID, ledgerID string) (*domain.GeneralLedger, error) {
	query := `SELECT ` + generalLedgerColumns + ` FROM general_ledgers WHERE project_id = $1 AND ledger_id = $2;`
	m, err := scanGeneralLedger(r.Pool.QueryRow(ctx, query, projectID, ledgerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find general ledger by ID "+ledgerID, err)
	}
	ledger := mapping.ToDomainGeneralLedger(m)
	return &ledger, nil
}

// FindGeneralLedgersByIDs retrieves multiple general ledgers keyed by ID.
// Missing IDs are simply absent from the result map.
func (r *PgxChartRepository) FindGeneralLedgersByIDs(ctx context.Context, projectID string, ledgerIDs []string) (map[string]domain.GeneralLedger, error) {
	if len(ledgerIDs) == 0 {
		return map[string]domain.GeneralLedger{}, nil
	}
	query := `SELECT ` + generalLedgerColumns + ` FROM general_ledgers WHERE project_id = $1 AND ledger_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, projectID, ledgerIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query general ledgers by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.GeneralLedger, len(ledgerIDs))
	for rows.Next() {
		m, err := scanGeneralLedger(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan general ledger row", err)
		}
		result[m.LedgerID] = mapping.ToDomainGeneralLedger(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating general ledger rows", err)
	}
	return result, nil
}

// ListGeneralLedgers retrieves all general ledgers of a project.
func (r *PgxChartRepository) ListGeneralLedgers(ctx context.Context, projectID string) ([]domain.GeneralLedger, error) {
	query := `SELECT ` + generalLedgerColumns + ` FROM general_ledgers WHERE project_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query general ledgers for project "+projectID, err)
	}
	defer rows.Close()

	ledgers := []models.GeneralLedger{}
	for rows.Next() {
		m, err := scanGeneralLedger(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan general ledger row", err)
		}
		ledgers = append(ledgers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating general ledger rows", err)
	}
	return mapping.ToDomainGeneralLedgerSlice(ledgers), nil
}

// SaveSubLedger persists a new sub-ledger.
func (r *PgxChartRepository) SaveSubLedger(ctx context.Context, subLedger domain.SubLedger) error {
	m := mapping.ToModelSubLedger(subLedger)
	query := `
		INSERT INTO sub_ledgers (sub_ledger_id, project_id, ledger_id, sub_ledger_name, alias, opening_balance, opening_balance_type, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SubLedgerID,
		m.ProjectID,
		m.LedgerID,
		m.SubLedgerName,
		m.Alias,
		m.OpeningBalance,
		m.OpeningBalanceType,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert sub-ledger "+m.SubLedgerID, err)
	}
	return nil
}

const subLedgerColumns = `sub_ledger_id, project_id, ledger_id, sub_ledger_name, alias, opening_balance, opening_balance_type, description, created_at, last_updated_at`

func scanSubLedger(row pgx.Row) (models.SubLedger, error) {
	var m models.SubLedger
	err := row.Scan(
		&m.SubLedgerID,
		&m.ProjectID,
		&m.LedgerID,
		&m.SubLedgerName,
		&m.Alias,
		&m.OpeningBalance,
		&m.OpeningBalanceType,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindSubLedgerByID retrieves a sub-ledger within a project.
func (r *PgxChartRepository) FindSubLedgerByID(ctx context.Context, projectID, subLedgerID string) (*domain.SubLedger, error) {
	query := `SELECT ` + subLedgerColumns + ` FROM sub_ledgers WHERE project_id = $1 AND sub_ledger_id = $2;`
	m, err := scanSubLedger(r.Pool.QueryRow(ctx, query, projectID, subLedgerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sub-ledger by ID "+subLedgerID, err)
	}
	sub := mapping.ToDomainSubLedger(m)
	return &sub, nil
}

// FindSubLedgersByIDs retrieves multiple sub-ledgers keyed by ID.
func (r *PgxChartRepository) FindSubLedgersByIDs(ctx context.Context, projectID string, subLedgerIDs []string) (map[string]domain.SubLedger, error) {
	if len(subLedgerIDs) == 0 {
		return map[string]domain.SubLedger{}, nil
	}
	query := `SELECT ` + subLedgerColumns + ` FROM sub_ledgers WHERE project_id = $1 AND sub_ledger_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, projectID, subLedgerIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sub-ledgers by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.SubLedger, len(subLedgerIDs))
	for rows.Next() {
		m, err := scanSubLedger(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sub-ledger row", err)
		}
		result[m.SubLedgerID] = mapping.ToDomainSubLedger(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sub-ledger rows", err)
	}
	return result, nil
}

// ListSubLedgers retrieves all sub-ledgers of a project, optionally restricted
// to one general ledger.
func (r *PgxChartRepository) ListSubLedgers(ctx context.Context, projectID, ledgerID string) ([]domain.SubLedger, error) {
	query := `SELECT ` + subLedgerColumns + ` FROM sub_ledgers WHERE project_id = $1`
	args := []interface{}{projectID}
	if ledgerID != "" {
		query += ` AND ledger_id = $2`
		args = append(args, ledgerID)
	}
	query += ` ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sub-ledgers for project "+projectID, err)
	}
	defer rows.Close()

	subs := []models.SubLedger{}
	for rows.Next() {
		m, err := scanSubLedger(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sub-ledger row", err)
		}
		subs = append(subs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sub-ledger rows", err)
	}
	return mapping.ToDomainSubLedgerSlice(subs), nil
}
