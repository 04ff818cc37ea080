package domain

// JournalEntry is a single debit-or-credit line within a voucher. Exactly
// one of DebitAmount / CreditAmount is nonzero.
type JournalEntry struct {
	EntryID      string  `json:"entryID"`
	VoucherID    string  `json:"voucherID"`
	SerialNo     int     `json:"serialNo"` // 1-based, contiguous within the voucher
	LedgerID     string  `json:"ledgerID"`
	SubLedgerID  *string `json:"subLedgerID,omitempty"`
	DebitAmount  Money   `json:"debitAmount"`
	CreditAmount Money   `json:"creditAmount"`
	Narration    string  `json:"narration,omitempty"` // entry-level override of the voucher narration
}

// Side returns which side of the books the entry posts to.
func (e JournalEntry) Side() BalanceSide {
	if !e.DebitAmount.IsZero() {
		return Debit
	}
	return Credit
}

// Amount returns the entry's magnitude regardless of side.
func (e JournalEntry) Amount() Money {
	if !e.DebitAmount.IsZero() {
		return e.DebitAmount
	}
	return e.CreditAmount
}

// JournalVoucher is an atomic, balanced set of entries representing one
// financial transaction. Vouchers are immutable once posted; corrections are
// new reversing vouchers.
type JournalVoucher struct {
	VoucherID string         `json:"voucherID"`
	ProjectID string         `json:"projectID"`
	VoucherNo int64          `json:"voucherNo"` // sequential per project, assigned at commit
	Date      Date           `json:"date"`
	Narration string         `json:"narration"`
	Entries   []JournalEntry `json:"entries"`
	AuditFields
}

// Totals recomputes the voucher's debit and credit column sums from its
// entries. The stored totals are a cache; the entries are the source of
// truth, so every read path derives the totals again.
func (v *JournalVoucher) Totals() (totalDebit, totalCredit Money) {
	for _, e := range v.Entries {
		totalDebit = totalDebit.Add(e.DebitAmount)
		totalCredit = totalCredit.Add(e.CreditAmount)
	}
	return totalDebit, totalCredit
}

// IsBalanced reports whether the debit and credit column sums are exactly
// equal. Amounts are integer cents, so the comparison is exact.
func (v *JournalVoucher) IsBalanced() bool {
	d, c := v.Totals()
	return d == c
}

// PostedEntry is a committed entry joined with its voucher's date, number
// and narration. Books and balance computations fold these in (date,
// voucherNo, serialNo) order.
type PostedEntry struct {
	JournalEntry
	Date             Date   `json:"date"`
	VoucherNo        int64  `json:"voucherNo"`
	VoucherNarration string `json:"voucherNarration"`
}

// EffectiveNarration returns the entry-level narration when present,
// otherwise the voucher's narration.
func (p PostedEntry) EffectiveNarration() string {
	if p.Narration != "" {
		return p.Narration
	}
	return p.VoucherNarration
}

// VoucherDraft is an uncommitted voucher being assembled by a caller.
// Serial numbers stay contiguous (1..N) through every mutation.
type VoucherDraft struct {
	Date      Date
	Narration string
	Entries   []JournalEntry
}

// AddEntry appends an entry and assigns it the next serial number.
func (d *VoucherDraft) AddEntry(e JournalEntry) {
	e.SerialNo = len(d.Entries) + 1
	d.Entries = append(d.Entries, e)
}

// RemoveEntry deletes the entry at the given zero-based index and renumbers
// the remainder to a gapless 1..N sequence.
func (d *VoucherDraft) RemoveEntry(index int) bool {
	if index < 0 || index >= len(d.Entries) {
		return false
	}
	d.Entries = append(d.Entries[:index], d.Entries[index+1:]...)
	d.renumber()
	return true
}

// MoveEntry moves the entry at from to position to, renumbering afterwards.
func (d *VoucherDraft) MoveEntry(from, to int) bool {
	if from < 0 || from >= len(d.Entries) || to < 0 || to >= len(d.Entries) {
		return false
	}
	e := d.Entries[from]
	d.Entries = append(d.Entries[:from], d.Entries[from+1:]...)
	d.Entries = append(d.Entries[:to], append([]JournalEntry{e}, d.Entries[to:]...)...)
	d.renumber()
	return true
}

func (d *VoucherDraft) renumber() {
	for i := range d.Entries {
		d.Entries[i].SerialNo = i + 1
	}
}
