package mapping

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/models"
)

// ToModelVoucher converts a domain JournalVoucher to a model JournalVoucher.
// Entries are mapped separately.
func ToModelVoucher(d domain.JournalVoucher) models.JournalVoucher {
	return models.JournalVoucher{
		VoucherID:   d.VoucherID,
		ProjectID:   d.ProjectID,
		VoucherNo:   d.VoucherNo,
		Date:        d.Date.Time(),
		Narration:   d.Narration,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model JournalVoucher to a domain JournalVoucher
// with the given entries attached.
func ToDomainVoucher(m models.JournalVoucher, entries []models.JournalEntry) domain.JournalVoucher {
	return domain.JournalVoucher{
		VoucherID:   m.VoucherID,
		ProjectID:   m.ProjectID,
		VoucherNo:   m.VoucherNo,
		Date:        domain.DateOf(m.Date),
		Narration:   m.Narration,
		Entries:     ToDomainEntrySlice(entries),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntry converts a domain JournalEntry to a model JournalEntry
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		VoucherID:    d.VoucherID,
		SerialNo:     d.SerialNo,
		LedgerID:     d.LedgerID,
		SubLedgerID:  d.SubLedgerID,
		DebitAmount:  int64(d.DebitAmount),
		CreditAmount: int64(d.CreditAmount),
		Narration:    d.Narration,
	}
}

// ToDomainEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		VoucherID:    m.VoucherID,
		SerialNo:     m.SerialNo,
		LedgerID:     m.LedgerID,
		SubLedgerID:  m.SubLedgerID,
		DebitAmount:  domain.Money(m.DebitAmount),
		CreditAmount: domain.Money(m.CreditAmount),
		Narration:    m.Narration,
	}
}

// ToDomainEntrySlice converts model JournalEntries to domain JournalEntries
func ToDomainEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}

// ToDomainPostedEntry converts a voucher-joined model JournalEntry to a
// domain PostedEntry.
func ToDomainPostedEntry(m models.JournalEntry) domain.PostedEntry {
	return domain.PostedEntry{
		JournalEntry:     ToDomainEntry(m),
		Date:             domain.DateOf(m.VoucherDate),
		VoucherNo:        m.VoucherNo,
		VoucherNarration: m.VoucherNarration,
	}
}
