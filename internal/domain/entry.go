package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates non-positive amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrInvalidEntryKind indicates an unknown entry kind.
	ErrInvalidEntryKind = errors.New("invalid entry kind")
	// ErrEntryNotFound indicates that the entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrCategoryNotFound indicates that the category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// EntryKind classifies a ledger entry.
type EntryKind string

// Supported entry kinds.
const (
	KindIncome      EntryKind = "income"
	KindExpense     EntryKind = "expense"
	KindTransferOut EntryKind = "transfer_out"
	KindTransferIn  EntryKind = "transfer_in"
)

// Valid reports whether the kind is one of the supported entry kinds.
func (k EntryKind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindTransferOut, KindTransferIn:
		return true
	}

	return false
}

// Sign returns +1 for kinds that credit the account balance and -1 for
// kinds that debit it.
func (k EntryKind) Sign() int {
	switch k {
	case KindIncome, KindTransferIn:
		return 1
	default:
		return -1
	}
}

// Entry is one immutable record of a signed money movement against one
// account. The amount is always positive; the direction comes from the kind.
type Entry struct {
	ID          int64      `json:"id"`
	Owner       string     `json:"owner"`
	AccountID   int32      `json:"account_id"`
	CategoryID  *int32     `json:"category_id,omitempty"`
	LoanID      *int32     `json:"loan_id,omitempty"`
	GoalID      *int32     `json:"goal_id,omitempty"`
	Amount      string     `json:"amount"`
	Kind        EntryKind  `json:"kind"`
	Description string     `json:"description,omitempty"`
	EntryDate   *time.Time `json:"entry_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LogicalDate returns the date the entry belongs to for budget-period
// matching, falling back to the creation timestamp when no explicit
// transaction date was supplied.
func (e Entry) LogicalDate() time.Time {
	if e.EntryDate != nil {
		return *e.EntryDate
	}

	return e.CreatedAt
}

// SignedAmount returns the entry amount with the sign implied by its kind.
func (e Entry) SignedAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if e.Kind.Sign() < 0 {
		return amount.Neg(), nil
	}

	return amount, nil
}

// CreateEntryParams is the input data to post an ordinary transaction.
type CreateEntryParams struct {
	Owner       string
	AccountID   int32
	CategoryID  *int32
	LoanID      *int32
	GoalID      *int32
	Amount      string
	Kind        EntryKind
	Description string
	EntryDate   *time.Time
}

// EntryWithNames is the transaction history read model with resolved
// account and category names.
type EntryWithNames struct {
	Entry
	AccountName  string `json:"account_name"`
	CategoryName string `json:"category_name,omitempty"`
}

// Category labels entries and scopes budgets. A nil owner means the
// category is one of the shared defaults.
type Category struct {
	ID    int32   `json:"id"`
	Owner *string `json:"owner,omitempty"`
	Name  string  `json:"name"`
}
