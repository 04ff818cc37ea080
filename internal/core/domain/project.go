package domain

// Project is an isolated bookkeeping environment. Every ledger group,
// ledger, voucher and budget entry belongs to exactly one project.
type Project struct {
	ProjectID   string `json:"projectID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
