package accounting

import (
	"github.com/fundbooks/fundbooks/internal/core/domain"
)

// SignedAmount applies the normal-balance sign convention to a journal entry.
// DEBIT to a debit-normal ledger (ASSET/EXPENSE) -> positive
// CREDIT to a debit-normal ledger -> negative
// CREDIT to a credit-normal ledger (LIABILITY/EQUITY/INCOME) -> positive
// DEBIT to a credit-normal ledger -> negative
func SignedAmount(entry domain.JournalEntry, accountType domain.AccountTypeCode) domain.Money {
	amount := entry.Amount()
	if entry.Side() != accountType.NormalBalance() {
		return amount.Neg()
	}
	return amount
}

// NetMovement folds posted entries into a net signed movement for a ledger of
// the given account type. The caller supplies entries already filtered to the
// ledger and ordered by date, voucher number, serial number.
func NetMovement(entries []domain.PostedEntry, accountType domain.AccountTypeCode) domain.Money {
	net := domain.Zero
	for _, e := range entries {
		net = net.Add(SignedAmount(e.JournalEntry, accountType))
	}
	return net
}
