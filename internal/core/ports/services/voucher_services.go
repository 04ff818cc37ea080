package services

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/dto"
)

// VoucherSvcFacade defines the journal posting engine's operations.
type VoucherSvcFacade interface {
	// PostVoucher validates and atomically commits a balanced voucher,
	// assigning the next sequential voucher number for the project.
	PostVoucher(ctx context.Context, projectID string, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error)

	// GetVoucherByNo retrieves a posted voucher with its entries.
	GetVoucherByNo(ctx context.Context, projectID string, voucherNo int64) (*domain.JournalVoucher, error)

	// ListVouchers retrieves a paginated list of a project's vouchers.
	ListVouchers(ctx context.Context, projectID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}
