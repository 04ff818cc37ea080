package dto

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherEntryRequest is one debit-or-credit line of a voucher being posted.
// Exactly one of debitAmount / creditAmount must be nonzero; the posting
// engine enforces this beyond what binding can express.
type VoucherEntryRequest struct {
	LedgerID     string          `json:"generalLedger" binding:"required,uuid"`
	SubLedgerID  *string         `json:"subLedger,omitempty" binding:"omitempty,uuid"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Narration    string          `json:"narration,omitempty" binding:"max=1000"`
}

// CreateVoucherRequest defines the payload for posting a journal voucher.
// The voucher number is never user-supplied; it is assigned at commit time.
type CreateVoucherRequest struct {
	Date      domain.Date           `json:"date" binding:"required"`
	Narration string                `json:"narration" binding:"required,max=1000"`
	Entries   []VoucherEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// VoucherEntryResponse defines the data returned for one voucher entry.
type VoucherEntryResponse struct {
	SerialNo     int          `json:"serialNo"`
	LedgerID     string       `json:"generalLedger"`
	SubLedgerID  *string      `json:"subLedger,omitempty"`
	DebitAmount  domain.Money `json:"debitAmount"`
	CreditAmount domain.Money `json:"creditAmount"`
	Narration    string       `json:"narration,omitempty"`
}

// VoucherResponse defines the data returned for a posted voucher. Totals are
// recomputed from the entries on every read, never trusted from storage.
type VoucherResponse struct {
	VoucherNo   int64                  `json:"voucherNo"`
	Date        domain.Date            `json:"date"`
	Narration   string                 `json:"narration"`
	Entries     []VoucherEntryResponse `json:"entries"`
	TotalDebit  domain.Money           `json:"totalDebit"`
	TotalCredit domain.Money           `json:"totalCredit"`
}

// ToVoucherResponse converts a domain.JournalVoucher to its response DTO.
func ToVoucherResponse(v *domain.JournalVoucher) VoucherResponse {
	entries := make([]VoucherEntryResponse, len(v.Entries))
	for i, e := range v.Entries {
		entries[i] = VoucherEntryResponse{
			SerialNo:     e.SerialNo,
			LedgerID:     e.LedgerID,
			SubLedgerID:  e.SubLedgerID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
			Narration:    e.Narration,
		}
	}
	totalDebit, totalCredit := v.Totals()
	return VoucherResponse{
		VoucherNo:   v.VoucherNo,
		Date:        v.Date,
		Narration:   v.Narration,
		Entries:     entries,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}
}

// ListVouchersParams holds parameters for listing vouchers.
type ListVouchersParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListVouchersResponse is the paginated voucher listing.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}
