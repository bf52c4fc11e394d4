package domain

import (
	"errors"
	"time"
)

var (
	// ErrBudgetNotFound indicates that no budget exists for the requested scope.
	ErrBudgetNotFound = errors.New("budget not found")
	// ErrInvalidBudgetPeriod indicates that the budget start date is after its end date.
	ErrInvalidBudgetPeriod = errors.New("budget start date is after end date")
)

// Budget caps expense spending for one (owner, category) scope over a date
// period. A nil CategoryID means the budget covers the whole account.
//
// At most one budget per scope is current: creating a new budget for the
// same scope retires any existing one.
type Budget struct {
	ID          int32     `json:"id"`
	Owner       string    `json:"owner"`
	CategoryID  *int32    `json:"category_id,omitempty"`
	AmountLimit string    `json:"amount_limit"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateBudgetParams is the input data to set a budget.
type CreateBudgetParams struct {
	Owner       string
	CategoryID  *int32
	AmountLimit string
	StartDate   time.Time
	EndDate     time.Time
}

// BudgetWithSpend is the budget read model: the configured limit together
// with the spend derived from the ledger at evaluation time. Spend is never
// stored; it is recomputed from qualifying expense entries on every read.
type BudgetWithSpend struct {
	Budget
	Spent     string `json:"spent"`
	Overspent bool   `json:"overspent"`
}
