package dto

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerGroupRequest defines the payload for creating a ledger group.
type CreateLedgerGroupRequest struct {
	GroupName   string `json:"groupName" binding:"required,max=255"`
	Alias       string `json:"alias" binding:"required,max=64"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Remarks     string `json:"remarks" binding:"max=1000"`
	IsCashBank  bool   `json:"isCashBank"`
}

// LedgerGroupResponse defines the data returned for a ledger group. The
// account type name is populated when the caller requests an embedded view.
type LedgerGroupResponse struct {
	GroupID         string `json:"groupID"`
	GroupName       string `json:"groupName"`
	Alias           string `json:"alias"`
	AccountType     string `json:"accountType"`
	AccountTypeName string `json:"accountTypeName,omitempty"`
	Remarks         string `json:"remarks,omitempty"`
	IsCashBank      bool   `json:"isCashBank"`
}

// ToLedgerGroupResponse converts a domain.LedgerGroup to its response DTO.
// accountTypeName may be empty for non-populated views.
func ToLedgerGroupResponse(g *domain.LedgerGroup, accountTypeName string) LedgerGroupResponse {
	return LedgerGroupResponse{
		GroupID:         g.GroupID,
		GroupName:       g.GroupName,
		Alias:           g.Alias,
		AccountType:     string(g.AccountTypeCode),
		AccountTypeName: accountTypeName,
		Remarks:         g.Remarks,
		IsCashBank:      g.IsCashBank,
	}
}

// CreateGeneralLedgerRequest defines the payload for creating a general ledger.
type CreateGeneralLedgerRequest struct {
	LedgerName         string          `json:"ledgerName" binding:"required,max=255"`
	Alias              string          `json:"alias" binding:"required,max=64"`
	GroupID            string          `json:"ledgerGroup" binding:"required,uuid"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceType string          `json:"openingBalanceType" binding:"required,oneof=DEBIT CREDIT"`
	Description        string          `json:"description" binding:"max=1000"`
}

// GeneralLedgerResponse defines the data returned for a general ledger.
type GeneralLedgerResponse struct {
	LedgerID           string       `json:"ledgerID"`
	LedgerName         string       `json:"ledgerName"`
	Alias              string       `json:"alias"`
	GroupID            string       `json:"ledgerGroup"`
	GroupName          string       `json:"groupName,omitempty"`
	OpeningBalance     domain.Money `json:"openingBalance"`
	OpeningBalanceType string       `json:"openingBalanceType"`
	Description        string       `json:"description,omitempty"`
}

// ToGeneralLedgerResponse converts a domain.GeneralLedger to its response
// DTO. groupName may be empty for non-populated views.
func ToGeneralLedgerResponse(l *domain.GeneralLedger, groupName string) GeneralLedgerResponse {
	return GeneralLedgerResponse{
		LedgerID:           l.LedgerID,
		LedgerName:         l.LedgerName,
		Alias:              l.Alias,
		GroupID:            l.GroupID,
		GroupName:          groupName,
		OpeningBalance:     l.OpeningBalance,
		OpeningBalanceType: string(l.OpeningBalanceType),
		Description:        l.Description,
	}
}

// CreateSubLedgerRequest defines the payload for creating a sub-ledger.
type CreateSubLedgerRequest struct {
	SubLedgerName      string          `json:"subLedgerName" binding:"required,max=255"`
	Alias              string          `json:"alias" binding:"required,max=64"`
	LedgerID           string          `json:"generalLedger" binding:"required,uuid"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceType string          `json:"openingBalanceType" binding:"required,oneof=DEBIT CREDIT"`
	Description        string          `json:"description" binding:"max=1000"`
}

// SubLedgerResponse defines the data returned for a sub-ledger.
type SubLedgerResponse struct {
	SubLedgerID        string       `json:"subLedgerID"`
	SubLedgerName      string       `json:"subLedgerName"`
	Alias              string       `json:"alias"`
	LedgerID           string       `json:"generalLedger"`
	LedgerName         string       `json:"ledgerName,omitempty"`
	OpeningBalance     domain.Money `json:"openingBalance"`
	OpeningBalanceType string       `json:"openingBalanceType"`
	Description        string       `json:"description,omitempty"`
}

// ToSubLedgerResponse converts a domain.SubLedger to its response DTO.
func ToSubLedgerResponse(s *domain.SubLedger, ledgerName string) SubLedgerResponse {
	return SubLedgerResponse{
		SubLedgerID:        s.SubLedgerID,
		SubLedgerName:      s.SubLedgerName,
		Alias:              s.Alias,
		LedgerID:           s.LedgerID,
		LedgerName:         ledgerName,
		OpeningBalance:     s.OpeningBalance,
		OpeningBalanceType: string(s.OpeningBalanceType),
		Description:        s.Description,
	}
}

// AccountTypeResponse defines the data returned for a global account type.
type AccountTypeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ToAccountTypeResponses converts domain account types to response DTOs.
func ToAccountTypeResponses(types []domain.AccountType) []AccountTypeResponse {
	responses := make([]AccountTypeResponse, len(types))
	for i, t := range types {
		responses[i] = AccountTypeResponse{Code: string(t.Code), Name: t.Name}
	}
	return responses
}
