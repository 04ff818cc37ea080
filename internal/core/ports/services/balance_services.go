package services

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// BalanceSvcFacade defines the balance computation engine. All figures are
// net-signed per the ledger's normal balance (debit-normal for ASSET/EXPENSE,
// credit-normal for LIABILITY/EQUITY/INCOME).
type BalanceSvcFacade interface {
	// ComputeLedgerBalance computes opening, period movement and closing for
	// a general ledger over [from, to]. rollUp includes entries posted to the
	// ledger's sub-ledgers (and the sub-ledgers' opening balances).
	ComputeLedgerBalance(ctx context.Context, projectID, ledgerID string, from, to domain.Date, rollUp bool) (*domain.BalanceResult, error)

	// ComputeSubLedgerBalance computes opening, period movement and closing
	// for a single sub-ledger over [from, to].
	ComputeSubLedgerBalance(ctx context.Context, projectID, subLedgerID string, from, to domain.Date) (*domain.BalanceResult, error)
}
