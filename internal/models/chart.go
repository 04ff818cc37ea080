package models

// AccountType is the database shape of the global account type reference data.
type AccountType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LedgerGroup is the database shape of a ledger group.
type LedgerGroup struct {
	GroupID         string `json:"groupID"`
	ProjectID       string `json:"projectID"`
	GroupName       string `json:"groupName"`
	Alias           string `json:"alias"`
	AccountTypeCode string `json:"accountTypeCode"`
	Remarks         string `json:"remarks"`
	IsCashBank      bool   `json:"isCashBank"`
	AuditFields
}

// GeneralLedger is the database shape of a general ledger. Amounts are stored
// as integer cents (BIGINT).
type GeneralLedger struct {
	LedgerID           string `json:"ledgerID"`
	ProjectID          string `json:"projectID"`
	GroupID            string `json:"groupID"`
	LedgerName         string `json:"ledgerName"`
	Alias              string `json:"alias"`
	OpeningBalance     int64  `json:"openingBalance"`
	OpeningBalanceType string `json:"openingBalanceType"`
	Description        string `json:"description"`
	AuditFields
}

// SubLedger is the database shape of a sub-ledger.
type SubLedger struct {
	SubLedgerID        string `json:"subLedgerID"`
	ProjectID          string `json:"projectID"`
	LedgerID           string `json:"ledgerID"`
	SubLedgerName      string `json:"subLedgerName"`
	Alias              string `json:"alias"`
	OpeningBalance     int64  `json:"openingBalance"`
	OpeningBalanceType string `json:"openingBalanceType"`
	Description        string `json:"description"`
	AuditFields
}
