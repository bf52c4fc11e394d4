package test

import (
	"time"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/pkg/randompkg"
)

// RandomAccount returns random account owned by the given owner.
func RandomAccount(owner string) domain.Account {
	return domain.Account{
		ID:        randompkg.IntBetween(1, 100),
		Owner:     owner,
		Name:      randompkg.String(8),
		Type:      randompkg.AccountType(),
		Balance:   randompkg.MoneyAmountBetween(1000, 10_000),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomGoal returns random goal owned by the given owner.
func RandomGoal(owner string) domain.Goal {
	return domain.Goal{
		ID:           randompkg.IntBetween(1, 100),
		Owner:        owner,
		Name:         randompkg.String(8),
		TargetAmount: randompkg.MoneyAmountBetween(1000, 10_000),
		Deadline:     randompkg.DateBetween(30, 365),
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomLoan returns random active loan owned by the given owner.
func RandomLoan(owner string) domain.Loan {
	return domain.Loan{
		ID:               randompkg.IntBetween(1, 100),
		Owner:            owner,
		Lender:           randompkg.String(8),
		Purpose:          randompkg.String(12),
		Principal:        randompkg.MoneyAmountBetween(1000, 10_000),
		InterestRate:     "12",
		InterestModel:    randompkg.InterestModel(),
		PaymentFrequency: randompkg.PaymentFrequency(),
		StartDate:        randompkg.DateBetween(-365, -30),
		DueDate:          randompkg.DateBetween(30, 365),
		PaidAmount:       "0",
		Status:           domain.LoanStatusActive,
		CreatedAt:        time.Now().Truncate(time.Second).UTC(),
	}
}
