package models

import "time"

// JournalVoucher is the database shape of a posted voucher. The date column
// is DATE; only its calendar day is meaningful.
type JournalVoucher struct {
	VoucherID string    `json:"voucherID"`
	ProjectID string    `json:"projectID"`
	VoucherNo int64     `json:"voucherNo"`
	Date      time.Time `json:"date"`
	Narration string    `json:"narration"`
	AuditFields
}

// JournalEntry is the database shape of one voucher line. Amounts are stored
// as integer cents (BIGINT). The voucher-level columns are populated only by
// queries that join through journal_vouchers.
type JournalEntry struct {
	EntryID      string  `json:"entryID"`
	VoucherID    string  `json:"voucherID"`
	SerialNo     int     `json:"serialNo"`
	LedgerID     string  `json:"ledgerID"`
	SubLedgerID  *string `json:"subLedgerID,omitempty"`
	DebitAmount  int64   `json:"debitAmount"`
	CreditAmount int64   `json:"creditAmount"`
	Narration    string  `json:"narration"`

	VoucherDate      time.Time `json:"voucherDate,omitempty"`
	VoucherNo        int64     `json:"voucherNo,omitempty"`
	VoucherNarration string    `json:"voucherNarration,omitempty"`
}
