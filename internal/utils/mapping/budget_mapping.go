package mapping

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/models"
)

// ToModelBudgetEntry converts a domain BudgetEntry to a model BudgetEntry
func ToModelBudgetEntry(d domain.BudgetEntry) models.BudgetEntry {
	return models.BudgetEntry{
		BudgetID:    d.BudgetID,
		ProjectID:   d.ProjectID,
		LedgerID:    d.LedgerID,
		PeriodFrom:  d.PeriodFrom.Time(),
		PeriodTo:    d.PeriodTo.Time(),
		Allocated:   int64(d.Allocated),
		Remarks:     d.Remarks,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetEntry converts a model BudgetEntry to a domain BudgetEntry
func ToDomainBudgetEntry(m models.BudgetEntry) domain.BudgetEntry {
	return domain.BudgetEntry{
		BudgetID:    m.BudgetID,
		ProjectID:   m.ProjectID,
		LedgerID:    m.LedgerID,
		PeriodFrom:  domain.DateOf(m.PeriodFrom),
		PeriodTo:    domain.DateOf(m.PeriodTo),
		Allocated:   domain.Money(m.Allocated),
		Remarks:     m.Remarks,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetEntrySlice converts model BudgetEntries to domain BudgetEntries
func ToDomainBudgetEntrySlice(ms []models.BudgetEntry) []domain.BudgetEntry {
	ds := make([]domain.BudgetEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetEntry(m)
	}
	return ds
}
