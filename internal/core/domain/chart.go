package domain

// The chart of accounts is a strict four-level tree:
// AccountType -> LedgerGroup -> GeneralLedger -> SubLedger.
// Each level holds a parent reference; the tree is append-only.

// LedgerGroup groups general ledgers under one account type within a project.
type LedgerGroup struct {
	GroupID         string          `json:"groupID"`
	ProjectID       string          `json:"projectID"`
	GroupName       string          `json:"groupName"`
	Alias           string          `json:"alias"` // unique within the project
	AccountTypeCode AccountTypeCode `json:"accountType"`
	Remarks         string          `json:"remarks"`
	// IsCashBank marks the group's ledgers as eligible for the cash/bank
	// book. Explicit flag rather than name inference.
	IsCashBank bool `json:"isCashBank"`
	AuditFields
}

// GeneralLedger is a postable account owned by exactly one LedgerGroup.
type GeneralLedger struct {
	LedgerID           string      `json:"ledgerID"`
	ProjectID          string      `json:"projectID"`
	GroupID            string      `json:"groupID"`
	LedgerName         string      `json:"ledgerName"`
	Alias              string      `json:"alias"` // unique within the project
	OpeningBalance     Money       `json:"openingBalance"` // non-negative magnitude
	OpeningBalanceType BalanceSide `json:"openingBalanceType"`
	Description        string      `json:"description"`
	AuditFields
}

// SubLedger subdivides a GeneralLedger. Entries may post directly to the
// general ledger without naming a sub-ledger.
type SubLedger struct {
	SubLedgerID        string      `json:"subLedgerID"`
	ProjectID          string      `json:"projectID"`
	LedgerID           string      `json:"ledgerID"`
	SubLedgerName      string      `json:"subLedgerName"`
	Alias              string      `json:"alias"`
	OpeningBalance     Money       `json:"openingBalance"`
	OpeningBalanceType BalanceSide `json:"openingBalanceType"`
	Description        string      `json:"description"`
	AuditFields
}

// SignedOpening returns the opening balance signed per the given normal
// balance: an opening on the normal side is positive, the opposite side is
// negative.
func SignedOpening(opening Money, openingSide BalanceSide, normal BalanceSide) Money {
	if openingSide == normal {
		return opening
	}
	return opening.Neg()
}
