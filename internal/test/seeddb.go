// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/budgetrepo"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/entryrepo"
	"github.com/go-petr/taka-track/internal/goalrepo"
	"github.com/go-petr/taka-track/internal/loanrepo"
	"github.com/go-petr/taka-track/internal/userrepo"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/passpkg"
	"github.com/go-petr/taka-track/pkg/randompkg"
)

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.String(10),
		Email:          randompkg.Email(),
	}

	userRepo := userrepo.NewRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAccountWith1000Balance creates Account with 1000 on balance inside a test transaction.
func SeedAccountWith1000Balance(t *testing.T, tx dbpkg.SQLInterface, username string) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	const balance = "1000"

	account, err := accountRepo.Create(context.Background(), username, randompkg.String(8), randompkg.AccountType(), balance)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v, ..., %v) returned error: %v", username, balance, err)
	}

	return account
}

// SeedEntry writes an income or expense entry inside a test transaction,
// applying its signed effect to the account balance.
func SeedEntry(t *testing.T, tx dbpkg.SQLInterface, owner string, accountID int32, amount string, kind domain.EntryKind) domain.Entry {
	t.Helper()

	entryRepo := entryrepo.NewTxRepoPGS(tx)

	arg := domain.CreateEntryParams{
		Owner:     owner,
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
	}

	entry, err := entryRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("entryRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	delta := amount
	if kind.Sign() < 0 {
		delta = "-" + amount
	}

	accountRepo := accountrepo.NewRepoPGS(tx)
	if _, err := accountRepo.AddBalance(context.Background(), delta, accountID); err != nil {
		t.Fatalf("accountRepo.AddBalance(context.Background(), %v, %v) returned error: %v", delta, accountID, err)
	}

	return entry
}

// SeedGoal creates a goal inside a test transaction.
func SeedGoal(t *testing.T, tx dbpkg.SQLInterface, owner, targetAmount string) domain.Goal {
	t.Helper()

	goalRepo := goalrepo.NewTxRepoPGS(tx)

	arg := domain.CreateGoalParams{
		Owner:        owner,
		Name:         randompkg.String(8),
		TargetAmount: targetAmount,
		Deadline:     randompkg.DateBetween(30, 365),
	}

	goal, err := goalRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("goalRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return goal
}

// SeedLoan creates a simple-interest loan inside a test transaction.
func SeedLoan(t *testing.T, tx dbpkg.SQLInterface, owner, principal string) domain.Loan {
	t.Helper()

	loanRepo := loanrepo.NewTxRepoPGS(tx)

	arg := domain.CreateLoanParams{
		Owner:            owner,
		Lender:           randompkg.String(8),
		Purpose:          randompkg.String(12),
		Principal:        principal,
		InterestRate:     "12",
		InterestModel:    "simple",
		PaymentFrequency: "monthly",
		StartDate:        randompkg.DateBetween(-365, -30),
		DueDate:          randompkg.DateBetween(30, 365),
	}

	loan, err := loanRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("loanRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return loan
}

// SeedBudget creates a whole-account budget covering today inside a test
// transaction.
func SeedBudget(t *testing.T, tx dbpkg.SQLInterface, owner, amountLimit string) domain.Budget {
	t.Helper()

	budgetRepo := budgetrepo.NewTxRepoPGS(tx)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	arg := domain.CreateBudgetParams{
		Owner:       owner,
		AmountLimit: amountLimit,
		StartDate:   today.AddDate(0, 0, -7),
		EndDate:     today.AddDate(0, 0, 7),
	}

	budget, err := budgetRepo.CreateReplacing(context.Background(), arg)
	if err != nil {
		t.Fatalf("budgetRepo.CreateReplacing(context.Background(), %+v) returned error: %v", arg, err)
	}

	return budget
}
