package mapping

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/models"
)

// ToDomainAccountType converts a model AccountType to a domain AccountType
func ToDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		Code: domain.AccountTypeCode(m.Code),
		Name: m.Name,
	}
}

// ToModelLedgerGroup converts a domain LedgerGroup to a model LedgerGroup
func ToModelLedgerGroup(d domain.LedgerGroup) models.LedgerGroup {
	return models.LedgerGroup{
		GroupID:         d.GroupID,
		ProjectID:       d.ProjectID,
		GroupName:       d.GroupName,
		Alias:           d.Alias,
		AccountTypeCode: string(d.AccountTypeCode),
		Remarks:         d.Remarks,
		IsCashBank:      d.IsCashBank,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerGroup converts a model LedgerGroup to a domain LedgerGroup
func ToDomainLedgerGroup(m models.LedgerGroup) domain.LedgerGroup {
	return domain.LedgerGroup{
		GroupID:         m.GroupID,
		ProjectID:       m.ProjectID,
		GroupName:       m.GroupName,
		Alias:           m.Alias,
		AccountTypeCode: domain.AccountTypeCode(m.AccountTypeCode),
		Remarks:         m.Remarks,
		IsCashBank:      m.IsCashBank,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelGeneralLedger converts a domain GeneralLedger to a model GeneralLedger
func ToModelGeneralLedger(d domain.GeneralLedger) models.GeneralLedger {
	return models.GeneralLedger{
		LedgerID:           d.LedgerID,
		ProjectID:          d.ProjectID,
		GroupID:            d.GroupID,
		LedgerName:         d.LedgerName,
		Alias:              d.Alias,
		OpeningBalance:     int64(d.OpeningBalance),
		OpeningBalanceType: string(d.OpeningBalanceType),
		Description:        d.Description,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGeneralLedger converts a model GeneralLedger to a domain GeneralLedger
func ToDomainGeneralLedger(m models.GeneralLedger) domain.GeneralLedger {
	return domain.GeneralLedger{
		LedgerID:           m.LedgerID,
		ProjectID:          m.ProjectID,
		GroupID:            m.GroupID,
		LedgerName:         m.LedgerName,
		Alias:              m.Alias,
		OpeningBalance:     domain.Money(m.OpeningBalance),
		OpeningBalanceType: domain.BalanceSide(m.OpeningBalanceType),
		Description:        m.Description,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSubLedger converts a domain SubLedger to a model SubLedger
func ToModelSubLedger(d domain.SubLedger) models.SubLedger {
	return models.SubLedger{
		SubLedgerID:        d.SubLedgerID,
		ProjectID:          d.ProjectID,
		LedgerID:           d.LedgerID,
		SubLedgerName:      d.SubLedgerName,
		Alias:              d.Alias,
		OpeningBalance:     int64(d.OpeningBalance),
		OpeningBalanceType: string(d.OpeningBalanceType),
		Description:        d.Description,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubLedger converts a model SubLedger to a domain SubLedger
func ToDomainSubLedger(m models.SubLedger) domain.SubLedger {
	return domain.SubLedger{
		SubLedgerID:        m.SubLedgerID,
		ProjectID:          m.ProjectID,
		LedgerID:           m.LedgerID,
		SubLedgerName:      m.SubLedgerName,
		Alias:              m.Alias,
		OpeningBalance:     domain.Money(m.OpeningBalance),
		OpeningBalanceType: domain.BalanceSide(m.OpeningBalanceType),
		Description:        m.Description,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerGroupSlice converts model LedgerGroups to domain LedgerGroups
func ToDomainLedgerGroupSlice(ms []models.LedgerGroup) []domain.LedgerGroup {
	ds := make([]domain.LedgerGroup, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerGroup(m)
	}
	return ds
}

// ToDomainGeneralLedgerSlice converts model GeneralLedgers to domain GeneralLedgers
func ToDomainGeneralLedgerSlice(ms []models.GeneralLedger) []domain.GeneralLedger {
	ds := make([]domain.GeneralLedger, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGeneralLedger(m)
	}
	return ds
}

// ToDomainSubLedgerSlice converts model SubLedgers to domain SubLedgers
func ToDomainSubLedgerSlice(ms []models.SubLedger) []domain.SubLedger {
	ds := make([]domain.SubLedger, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubLedger(m)
	}
	return ds
}
