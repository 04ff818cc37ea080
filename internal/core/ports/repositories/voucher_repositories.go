package repositories

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// EntryFilter selects posted entries for balance and book computations.
// LedgerID and SubLedgerID are mutually exclusive; RollUp widens a LedgerID
// filter to include entries posted to the ledger's sub-ledgers. Nil dates
// leave the corresponding bound open.
type EntryFilter struct {
	LedgerID    string
	SubLedgerID string
	RollUp      bool
	From        *domain.Date
	To          *domain.Date
}

// VoucherReader defines read operations for posted vouchers.
type VoucherReader interface {
	// MaxVoucherNo returns the highest voucher number assigned in the
	// project, or 0 when no voucher exists yet.
	MaxVoucherNo(ctx context.Context, projectID string) (int64, error)

	// FindVoucherByNo retrieves a voucher and its entries by voucher number.
	FindVoucherByNo(ctx context.Context, projectID string, voucherNo int64) (*domain.JournalVoucher, error)

	// ListVouchersByProject retrieves a paginated list of vouchers (entries
	// included) using token-based pagination in (date, voucherNo) order.
	ListVouchersByProject(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.JournalVoucher, *string, error)

	// ListPostedEntries retrieves committed entries matching the filter,
	// ordered by date, voucher number, serial number.
	ListPostedEntries(ctx context.Context, projectID string, filter EntryFilter) ([]domain.PostedEntry, error)
}

// VoucherWriter defines write operations for posted vouchers.
type VoucherWriter interface {
	// SaveVoucher persists a voucher and all of its entries atomically.
	// Returns ErrDuplicate when the (project, voucherNo) pair is already
	// taken, which signals a lost voucher-number race.
	SaveVoucher(ctx context.Context, voucher domain.JournalVoucher) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
