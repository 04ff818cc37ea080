package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fundbooks/fundbooks/internal/apperrors"
	"github.com/fundbooks/fundbooks/internal/core/domain"
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/dto"
)

var (
	ErrVoucherUnbalanced  = errors.New("unbalanced voucher: total debit must equal total credit")
	ErrVoucherMinEntries  = errors.New("minimum two entries required")
	ErrEntryAmountInvalid = errors.New("entry must be exactly debit or credit")
	ErrLedgerRefInvalid   = errors.New("invalid ledger reference")
	ErrNarrationMissing   = errors.New("voucher narration is required")
)

// voucherNoMaxRetries bounds the retry loop when a voucher number race slips
// past the per-project lock (e.g. multiple engine instances on one database).
const voucherNoMaxRetries = 3

// voucherService is the journal posting engine. It validates balance and
// structural invariants, assigns sequential voucher numbers and commits
// vouchers as immutable units.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	chartRepo   portsrepo.ChartRepositoryFacade

	// projectLocks serializes voucher-number assignment per project.
	mu           sync.Mutex
	projectLocks map[string]*sync.Mutex
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, chartRepo portsrepo.ChartRepositoryFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:  voucherRepo,
		chartRepo:    chartRepo,
		projectLocks: make(map[string]*sync.Mutex),
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// projectLock returns the mutex guarding voucher numbering for a project.
func (s *voucherService) projectLock(projectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.projectLocks[projectID]
	if !ok {
		lock = &sync.Mutex{}
		s.projectLocks[projectID] = lock
	}
	return lock
}

// buildEntries converts and validates the request entries. Each entry must
// have exactly one nonzero side and all amounts are non-negative integer cents.
func buildEntries(req dto.CreateVoucherRequest) ([]domain.JournalEntry, error) {
	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, e := range req.Entries {
		debit, err := domain.MoneyFromDecimal(e.DebitAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", apperrors.ErrValidation, i+1, err)
		}
		credit, err := domain.MoneyFromDecimal(e.CreditAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", apperrors.ErrValidation, i+1, err)
		}
		if debit.IsNegative() || credit.IsNegative() {
			return nil, fmt.Errorf("%w: entry %d: amounts must not be negative", apperrors.ErrValidation, i+1)
		}
		if debit.IsZero() == credit.IsZero() {
			return nil, fmt.Errorf("%w: entry %d", ErrEntryAmountInvalid, i+1)
		}
		entries[i] = domain.JournalEntry{
			EntryID:      uuid.NewString(),
			SerialNo:     i + 1,
			LedgerID:     e.LedgerID,
			SubLedgerID:  e.SubLedgerID,
			DebitAmount:  debit,
			CreditAmount: credit,
			Narration:    e.Narration,
		}
	}
	return entries, nil
}

// validateLedgerRefs checks that every entry's general ledger resolves within
// the project and that any sub-ledger belongs to the named general ledger.
func (s *voucherService) validateLedgerRefs(ctx context.Context, projectID string, entries []domain.JournalEntry) error {
	ledgerIDs := make([]string, 0, len(entries))
	subLedgerIDs := make([]string, 0)
	for _, e := range entries {
		ledgerIDs = append(ledgerIDs, e.LedgerID)
		if e.SubLedgerID != nil {
			subLedgerIDs = append(subLedgerIDs, *e.SubLedgerID)
		}
	}

	ledgers, err := s.chartRepo.FindGeneralLedgersByIDs(ctx, projectID, uniqueStrings(ledgerIDs))
	if err != nil {
		return fmt.Errorf("failed to fetch general ledgers: %w", err)
	}
	var subLedgers map[string]domain.SubLedger
	if len(subLedgerIDs) > 0 {
		subLedgers, err = s.chartRepo.FindSubLedgersByIDs(ctx, projectID, uniqueStrings(subLedgerIDs))
		if err != nil {
			return fmt.Errorf("failed to fetch sub-ledgers: %w", err)
		}
	}

	for _, e := range entries {
		if _, ok := ledgers[e.LedgerID]; !ok {
			return fmt.Errorf("%w: general ledger %s", ErrLedgerRefInvalid, e.LedgerID)
		}
		if e.SubLedgerID != nil {
			sub, ok := subLedgers[*e.SubLedgerID]
			if !ok {
				return fmt.Errorf("%w: sub-ledger %s", ErrLedgerRefInvalid, *e.SubLedgerID)
			}
			if sub.LedgerID != e.LedgerID {
				return fmt.Errorf("%w: sub-ledger %s does not belong to general ledger %s", ErrLedgerRefInvalid, *e.SubLedgerID, e.LedgerID)
			}
		}
	}
	return nil
}

// PostVoucher validates and atomically commits a balanced voucher.
func (s *voucherService) PostVoucher(ctx context.Context, projectID string, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	logger := s.GetLogger(ctx)

	if len(req.Entries) < 2 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrVoucherMinEntries)
	}
	if req.Narration == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNarrationMissing)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: voucher date is required", apperrors.ErrValidation)
	}

	entries, err := buildEntries(req)
	if err != nil {
		return nil, err
	}

	if err := s.validateLedgerRefs(ctx, projectID, entries); err != nil {
		if errors.Is(err, ErrLedgerRefInvalid) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		return nil, err
	}

	now := time.Now().UTC()
	voucher := domain.JournalVoucher{
		VoucherID: uuid.NewString(),
		ProjectID: projectID,
		Date:      req.Date,
		Narration: req.Narration,
		Entries:   entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for i := range voucher.Entries {
		voucher.Entries[i].VoucherID = voucher.VoucherID
	}

	// Integer-cent arithmetic: the two column sums must match exactly.
	totalDebit, totalCredit := voucher.Totals()
	if totalDebit != totalCredit {
		return nil, fmt.Errorf("%w: debit %s, credit %s (%s)",
			apperrors.ErrValidation, totalDebit, totalCredit, ErrVoucherUnbalanced)
	}

	// Voucher numbers are unique, gapless and monotonic per project. The
	// in-process lock serializes read-max/assign/persist; the repository's
	// unique constraint backstops races from outside this process, which we
	// absorb with a bounded retry.
	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < voucherNoMaxRetries; attempt++ {
		maxNo, err := s.voucherRepo.MaxVoucherNo(ctx, projectID)
		if err != nil {
			logger.Error("Failed to read max voucher number", slog.String("project_id", projectID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to read max voucher number: %w", err)
		}
		voucher.VoucherNo = maxNo + 1

		err = s.voucherRepo.SaveVoucher(ctx, voucher)
		if err == nil {
			logger.Info("Voucher posted successfully",
				slog.String("project_id", projectID),
				slog.Int64("voucher_no", voucher.VoucherNo),
				slog.Int("entry_count", len(voucher.Entries)))
			return &voucher, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save voucher", slog.String("project_id", projectID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save voucher: %w", err)
		}
		logger.Warn("Voucher number race detected, retrying",
			slog.String("project_id", projectID),
			slog.Int64("voucher_no", voucher.VoucherNo),
			slog.Int("attempt", attempt+1))
	}

	return nil, fmt.Errorf("%w: voucher number assignment retries exhausted", apperrors.ErrConflict)
}

// GetVoucherByNo retrieves a posted voucher with its entries.
func (s *voucherService) GetVoucherByNo(ctx context.Context, projectID string, voucherNo int64) (*domain.JournalVoucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByNo(ctx, projectID, voucherNo)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher", slog.Int64("voucher_no", voucherNo))
		}
		return nil, fmt.Errorf("failed to find voucher %d: %w", voucherNo, err)
	}
	return voucher, nil
}

// ListVouchers retrieves a paginated list of a project's vouchers.
func (s *voucherService) ListVouchers(ctx context.Context, projectID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchersByProject(ctx, projectID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to retrieve vouchers: %w", err)
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}

	s.LogInfo(ctx, "Vouchers listed successfully", slog.Int("count", len(vouchers)))
	return &dto.ListVouchersResponse{Vouchers: responses, NextToken: nextToken}, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
