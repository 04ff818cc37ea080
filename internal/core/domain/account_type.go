package domain

// AccountTypeCode is the fundamental accounting classification of a ledger
// group. Account types are global reference data, not project-scoped.
type AccountTypeCode string

const (
	Asset     AccountTypeCode = "ASSET"
	Liability AccountTypeCode = "LIABILITY"
	Equity    AccountTypeCode = "EQUITY"
	Income    AccountTypeCode = "INCOME"
	Expense   AccountTypeCode = "EXPENSE"
)

// AccountType is a global classification record.
type AccountType struct {
	Code AccountTypeCode `json:"code"`
	Name string          `json:"name"`
}

// BalanceSide indicates whether an amount sits on the debit or credit side.
type BalanceSide string

const (
	Debit  BalanceSide = "DEBIT"
	Credit BalanceSide = "CREDIT"
)

// Opposite returns the other side of the books.
func (s BalanceSide) Opposite() BalanceSide {
	if s == Debit {
		return Credit
	}
	return Debit
}

// NormalBalance returns the side on which an account of this type naturally
// carries its balance. ASSET/EXPENSE are debit-normal; LIABILITY/EQUITY/INCOME
// are credit-normal.
func (c AccountTypeCode) NormalBalance() BalanceSide {
	switch c {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}

// IsValid reports whether the code is one of the five known account types.
func (c AccountTypeCode) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}
