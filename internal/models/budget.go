package models

import "time"

// BudgetEntry is the database shape of a budget allocation. The period
// columns are DATE; allocated is integer cents (BIGINT).
type BudgetEntry struct {
	BudgetID   string    `json:"budgetID"`
	ProjectID  string    `json:"projectID"`
	LedgerID   string    `json:"ledgerID"`
	PeriodFrom time.Time `json:"periodFrom"`
	PeriodTo   time.Time `json:"periodTo"`
	Allocated  int64     `json:"allocated"`
	Remarks    string    `json:"remarks"`
	AuditFields
}
