package domain

// BudgetEntry allocates an amount to a general ledger for a period. Budget
// entries are joined against actual posted movement by the fund
// accountability and budget-vs-expenditure reports.
type BudgetEntry struct {
	BudgetID   string `json:"budgetID"`
	ProjectID  string `json:"projectID"`
	LedgerID   string `json:"ledgerID"`
	PeriodFrom Date   `json:"periodFrom"`
	PeriodTo   Date   `json:"periodTo"`
	Allocated  Money  `json:"allocated"`
	Remarks    string `json:"remarks"`
	AuditFields
}
