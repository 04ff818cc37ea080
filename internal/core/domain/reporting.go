package domain

// BalanceResult is the output of a balance computation over a date range.
type BalanceResult struct {
	Opening  Money `json:"opening"`
	Movement Money `json:"movement"`
	Closing  Money `json:"closing"`
	// RolledUp is true when the figures include entries posted to the
	// ledger's sub-ledgers in addition to its direct postings.
	RolledUp bool `json:"rolledUp"`
}

// BookLine is one contributing entry in a ledger book listing.
type BookLine struct {
	Date           Date   `json:"date"`
	VoucherNo      int64  `json:"voucherNo"`
	SerialNo       int    `json:"serialNo"`
	Narration      string `json:"narration"`
	Debit          Money  `json:"debit"`
	Credit         Money  `json:"credit"`
	RunningBalance Money  `json:"runningBalance"`
}

// LedgerBook is the book for one ledger (or sub-ledger) over a period:
// opening balance, contributing entries with running balances, closing balance.
type LedgerBook struct {
	LedgerID   string     `json:"ledgerID"`
	LedgerName string     `json:"ledgerName"`
	From       Date       `json:"from"`
	To         Date       `json:"to"`
	Opening    Money      `json:"opening"`
	Lines      []BookLine `json:"lines"`
	Closing    Money      `json:"closing"`
}

// CashBankBook is the union of ledger books over every ledger whose group
// carries the cash/bank flag.
type CashBankBook struct {
	From  Date         `json:"from"`
	To    Date         `json:"to"`
	Books []LedgerBook `json:"books"`
}

// TrialBalanceRow lists one general ledger's rolled-up closing balance in
// its debit or credit column.
type TrialBalanceRow struct {
	LedgerID    string          `json:"ledgerID"`
	LedgerName  string          `json:"ledgerName"`
	AccountType AccountTypeCode `json:"accountType"`
	Debit       Money           `json:"debit"`
	Credit      Money           `json:"credit"`
}

// TrialBalance is the full trial balance as of a date. Balanced is a derived
// invariant check: the two column totals must be equal.
type TrialBalance struct {
	AsOf        Date              `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  Money             `json:"totalDebit"`
	TotalCredit Money             `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}

// LedgerAmount pairs a ledger with a net amount for statement sections.
type LedgerAmount struct {
	LedgerID   string `json:"ledgerID"`
	LedgerName string `json:"ledgerName"`
	Amount     Money  `json:"amount"`
}

// IncomeStatement sums period movement of INCOME vs EXPENSE ledgers.
type IncomeStatement struct {
	From         Date           `json:"from"`
	To           Date           `json:"to"`
	Income       []LedgerAmount `json:"income"`
	Expenses     []LedgerAmount `json:"expenses"`
	TotalIncome  Money          `json:"totalIncome"`
	TotalExpense Money          `json:"totalExpense"`
	NetResult    Money          `json:"netResult"`
}

// BalanceSheet sums as-of closing balances of ASSET vs LIABILITY+EQUITY.
// CurrentEarnings carries the unclosed income-minus-expense result so the
// accounting identity holds pre-closing; Discrepancy surfaces any residual
// imbalance instead of hiding it.
type BalanceSheet struct {
	AsOf             Date           `json:"asOf"`
	Assets           []LedgerAmount `json:"assets"`
	Liabilities      []LedgerAmount `json:"liabilities"`
	Equity           []LedgerAmount `json:"equity"`
	TotalAssets      Money          `json:"totalAssets"`
	TotalLiabilities Money          `json:"totalLiabilities"`
	TotalEquity      Money          `json:"totalEquity"`
	CurrentEarnings  Money          `json:"currentEarnings"`
	Discrepancy      Money          `json:"discrepancy"`
	Balanced         bool           `json:"balanced"`
}

// BudgetVarianceRow compares allocated budget to actual posted movement for
// one ledger. Ledgers with actual movement but no budget entry appear with
// Unbudgeted set rather than being dropped.
type BudgetVarianceRow struct {
	LedgerID   string `json:"ledgerID"`
	LedgerName string `json:"ledgerName"`
	Allocated  Money  `json:"allocated"`
	Actual     Money  `json:"actual"`
	Variance   Money  `json:"variance"` // allocated - actual
	Unbudgeted bool   `json:"unbudgeted"`
}

// BudgetVarianceReport is the shared shape of the fund accountability and
// budget-vs-expenditure reports.
type BudgetVarianceReport struct {
	From           Date                `json:"from"`
	To             Date                `json:"to"`
	Rows           []BudgetVarianceRow `json:"rows"`
	TotalAllocated Money               `json:"totalAllocated"`
	TotalActual    Money               `json:"totalActual"`
	TotalVariance  Money               `json:"totalVariance"`
}
