package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrGoalNotFound indicates that the goal is not found.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrDeadlinePassed indicates that the goal deadline is in the past.
	ErrDeadlinePassed = errors.New("goal deadline is in the past")
)

// GoalEpsilon absorbs rounding noise when comparing progress against the
// target amount.
var GoalEpsilon = decimal.RequireFromString("0.01")

// Goal is a savings target. Progress is not stored; it is derived from the
// ledger entries created at or after the goal itself.
//
// A goal is consumed the first time its progress reaches the target:
// completion deletes the row rather than flipping a status flag.
type Goal struct {
	ID           int32     `json:"id"`
	Owner        string    `json:"owner"`
	Name         string    `json:"name"`
	TargetAmount string    `json:"target_amount"`
	Deadline     time.Time `json:"deadline"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateGoalParams is the input data to create a goal.
type CreateGoalParams struct {
	Owner        string
	Name         string
	TargetAmount string
	Deadline     time.Time
}

// GoalWithProgress is the goal read model with derived progress.
type GoalWithProgress struct {
	Goal
	Progress string `json:"progress"`
}

// GoalProgress derives the goal's accumulated value from ledger entries:
// income adds, expense subtracts, transfers are ignored since they only
// reshuffle money between the user's own accounts. Entries created before
// the goal do not count.
func GoalProgress(goal Goal, entries []Entry) decimal.Decimal {
	progress := decimal.Zero

	for _, e := range entries {
		if e.CreatedAt.Before(goal.CreatedAt) {
			continue
		}

		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			continue
		}

		switch e.Kind {
		case KindIncome:
			progress = progress.Add(amount)
		case KindExpense:
			progress = progress.Sub(amount)
		}
	}

	return progress
}

// GoalReached reports whether the given progress satisfies the goal target
// within GoalEpsilon.
func GoalReached(goal Goal, progress decimal.Decimal) bool {
	target, err := decimal.NewFromString(goal.TargetAmount)
	if err != nil {
		return false
	}

	return progress.GreaterThanOrEqual(target.Sub(GoalEpsilon))
}
