package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	"github.com/fundbooks/fundbooks/internal/models"
	"github.com/fundbooks/fundbooks/internal/utils/mapping"
	"github.com/fundbooks/fundbooks/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and entry data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

// SaveVoucher persists a voucher and all of its entries within a DB
// transaction. The unique constraint on (project_id, voucher_no) turns a lost
// numbering race into ErrDuplicate for the caller to retry.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	voucherQuery := `
		INSERT INTO journal_vouchers (voucher_id, project_id, voucher_no, voucher_date, narration, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, voucherQuery,
		m.VoucherID,
		m.ProjectID,
		m.VoucherNo,
		m.Date,
		m.Narration,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO journal_entries (entry_id, voucher_id, serial_no, ledger_id, sub_ledger_id, debit_amount, credit_amount, narration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, e := range voucher.Entries {
		me := mapping.ToModelEntry(e)
		batch.Queue(entryQuery,
			me.EntryID,
			me.VoucherID,
			me.SerialNo,
			me.LedgerID,
			me.SubLedgerID,
			me.DebitAmount,
			me.CreditAmount,
			me.Narration,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute entry batch for voucher "+m.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

// MaxVoucherNo returns the highest voucher number assigned in the project, or
// 0 when no voucher exists yet.
func (r *PgxVoucherRepository) MaxVoucherNo(ctx context.Context, projectID string) (int64, error) {
	query := `SELECT COALESCE(MAX(voucher_no), 0) FROM journal_vouchers WHERE project_id = $1;`
	var maxNo int64
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&maxNo); err != nil {
		return 0, apperrors.NewAppError(500, "failed to query max voucher number for project "+projectID, err)
	}
	return maxNo, nil
}

const voucherColumns = `voucher_id, project_id, voucher_no, voucher_date, narration, created_at, last_updated_at`

func scanVoucher(row pgx.Row) (models.JournalVoucher, error) {
	var m models.JournalVoucher
	err := row.Scan(
		&m.VoucherID,
		&m.ProjectID,
		&m.VoucherNo,
		&m.Date,
		&m.Narration,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindVoucherByNo retrieves a voucher and its entries by voucher number.
func (r *PgxVoucherRepository) FindVoucherByNo(ctx context.Context, projectID string, voucherNo int64) (*domain.JournalVoucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM journal_vouchers WHERE project_id = $1 AND voucher_no = $2;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, projectID, voucherNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher "+strconv.FormatInt(voucherNo, 10), err)
	}

	entriesMap, err := r.findEntriesByVoucherIDs(ctx, []string{m.VoucherID})
	if err != nil {
		return nil, err
	}

	voucher := mapping.ToDomainVoucher(m, entriesMap[m.VoucherID])
	return &voucher, nil
}

// findEntriesByVoucherIDs retrieves all entries for the given vouchers,
// grouped by voucher ID and ordered by serial number.
func (r *PgxVoucherRepository) findEntriesByVoucherIDs(ctx context.Context, voucherIDs []string) (map[string][]models.JournalEntry, error) {
	if len(voucherIDs) == 0 {
		return map[string][]models.JournalEntry{}, nil
	}
	query := `
		SELECT entry_id, voucher_id, serial_no, ledger_id, sub_ledger_id, debit_amount, credit_amount, narration
		FROM journal_entries
		WHERE voucher_id = ANY($1)
		ORDER BY voucher_id, serial_no;
	`
	rows, err := r.Pool.Query(ctx, query, voucherIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries by voucher IDs", err)
	}
	defer rows.Close()

	entriesMap := make(map[string][]models.JournalEntry, len(voucherIDs))
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.VoucherID,
			&e.SerialNo,
			&e.LedgerID,
			&e.SubLedgerID,
			&e.DebitAmount,
			&e.CreditAmount,
			&e.Narration,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entriesMap[e.VoucherID] = append(entriesMap[e.VoucherID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}
	return entriesMap, nil
}

// ListVouchersByProject retrieves a paginated list of vouchers with their
// entries, using token-based pagination in (voucher_date, voucher_no)
// descending order.
func (r *PgxVoucherRepository) ListVouchersByProject(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.JournalVoucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row decides whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + voucherColumns + ` FROM journal_vouchers WHERE project_id = $1`
	orderByClause := `ORDER BY voucher_date DESC, voucher_no DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{projectID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastVoucherNo, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (voucher_date, voucher_no) < ($2, $3)`
		args = append(args, lastDate.Time(), lastVoucherNo)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers for project "+projectID, err)
	}
	defer rows.Close()

	modelVouchers := make([]models.JournalVoucher, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanVoucher(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row for project "+projectID, scanErr)
		}
		modelVouchers = append(modelVouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating voucher rows for project "+projectID, err)
	}

	var nextTokenVal *string
	results := modelVouchers
	if len(modelVouchers) > limit {
		lastVoucher := modelVouchers[limit-1]
		newToken := pagination.EncodeToken(domain.DateOf(lastVoucher.Date), lastVoucher.VoucherNo)
		nextTokenVal = &newToken
		results = modelVouchers[:limit]
	}

	voucherIDs := make([]string, len(results))
	for i, m := range results {
		voucherIDs[i] = m.VoucherID
	}
	entriesMap, err := r.findEntriesByVoucherIDs(ctx, voucherIDs)
	if err != nil {
		return nil, nil, err
	}

	vouchers := make([]domain.JournalVoucher, len(results))
	for i, m := range results {
		vouchers[i] = mapping.ToDomainVoucher(m, entriesMap[m.VoucherID])
	}
	return vouchers, nextTokenVal, nil
}

// ListPostedEntries retrieves committed entries matching the filter, ordered
// by voucher date, voucher number, serial number.
func (r *PgxVoucherRepository) ListPostedEntries(ctx context.Context, projectID string, filter portsrepo.EntryFilter) ([]domain.PostedEntry, error) {
	baseQuery := `
		SELECT e.entry_id, e.voucher_id, e.serial_no, e.ledger_id, e.sub_ledger_id, e.debit_amount, e.credit_amount, e.narration,
		       v.voucher_date, v.voucher_no, v.narration
		FROM journal_entries e
		JOIN journal_vouchers v ON e.voucher_id = v.voucher_id
		WHERE v.project_id = $1
	`
	args := []interface{}{projectID}

	filterClause := ""
	if filter.SubLedgerID != "" {
		filterClause += ` AND e.sub_ledger_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, filter.SubLedgerID)
	} else if filter.LedgerID != "" {
		filterClause += ` AND e.ledger_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, filter.LedgerID)
		if !filter.RollUp {
			filterClause += ` AND e.sub_ledger_id IS NULL`
		}
	}
	if filter.From != nil {
		filterClause += ` AND v.voucher_date >= $` + strconv.Itoa(len(args)+1)
		args = append(args, filter.From.Time())
	}
	if filter.To != nil {
		filterClause += ` AND v.voucher_date <= $` + strconv.Itoa(len(args)+1)
		args = append(args, filter.To.Time())
	}

	query := baseQuery + filterClause + ` ORDER BY v.voucher_date, v.voucher_no, e.serial_no;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query posted entries for project "+projectID, err)
	}
	defer rows.Close()

	entries := []domain.PostedEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.VoucherID,
			&e.SerialNo,
			&e.LedgerID,
			&e.SubLedgerID,
			&e.DebitAmount,
			&e.CreditAmount,
			&e.Narration,
			&e.VoucherDate,
			&e.VoucherNo,
			&e.VoucherNarration,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posted entry row", err)
		}
		entries = append(entries, mapping.ToDomainPostedEntry(e))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating posted entry rows", err)
	}
	return entries, nil
}
