package dto

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetEntryRequest defines the payload for recording a budget
// allocation against a general ledger for a period.
type CreateBudgetEntryRequest struct {
	LedgerID   string          `json:"generalLedger" binding:"required,uuid"`
	PeriodFrom domain.Date     `json:"periodFrom" binding:"required"`
	PeriodTo   domain.Date     `json:"periodTo" binding:"required"`
	Allocated  decimal.Decimal `json:"allocated" binding:"required"`
	Remarks    string          `json:"remarks" binding:"max=1000"`
}

// BudgetEntryResponse defines the data returned for a budget entry.
type BudgetEntryResponse struct {
	BudgetID   string       `json:"budgetID"`
	LedgerID   string       `json:"generalLedger"`
	LedgerName string       `json:"ledgerName,omitempty"`
	PeriodFrom domain.Date  `json:"periodFrom"`
	PeriodTo   domain.Date  `json:"periodTo"`
	Allocated  domain.Money `json:"allocated"`
	Remarks    string       `json:"remarks,omitempty"`
}

// ToBudgetEntryResponse converts a domain.BudgetEntry to its response DTO.
func ToBudgetEntryResponse(b *domain.BudgetEntry, ledgerName string) BudgetEntryResponse {
	return BudgetEntryResponse{
		BudgetID:   b.BudgetID,
		LedgerID:   b.LedgerID,
		LedgerName: ledgerName,
		PeriodFrom: b.PeriodFrom,
		PeriodTo:   b.PeriodTo,
		Allocated:  b.Allocated,
		Remarks:    b.Remarks,
	}
}
