//go:build integration

package loanrepo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/loanrepo"
	"github.com/go-petr/taka-track/internal/test"
	"github.com/go-petr/taka-track/pkg/configpkg"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	loanRepo := loanrepo.NewTxRepoPGS(tx)

	arg := domain.CreateLoanParams{
		Owner:            user.Username,
		Lender:           randompkg.String(8),
		Purpose:          randompkg.String(12),
		Principal:        "5000",
		InterestRate:     "12.5",
		InterestModel:    "emi",
		PaymentFrequency: "monthly",
		StartDate:        randompkg.DateBetween(-365, -30),
		DueDate:          randompkg.DateBetween(30, 365),
	}

	loan, err := loanRepo.Create(context.Background(), arg)
	require.NoError(t, err)

	require.Equal(t, user.Username, loan.Owner)
	require.Equal(t, "5000.00", loan.Principal)
	require.Equal(t, "12.5000", loan.InterestRate)
	require.Equal(t, "emi", loan.InterestModel)
	require.Equal(t, "0.00", loan.PaidAmount)
	require.Equal(t, domain.LoanStatusActive, loan.Status)
	require.NotZero(t, loan.ID)
}

func TestCreateConstraintViolations(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	loanRepo := loanrepo.NewTxRepoPGS(tx)

	valid := domain.CreateLoanParams{
		Owner:            user.Username,
		Lender:           randompkg.String(8),
		Purpose:          randompkg.String(12),
		Principal:        "5000",
		InterestRate:     "12",
		InterestModel:    "simple",
		PaymentFrequency: "monthly",
		StartDate:        randompkg.DateBetween(-365, -30),
		DueDate:          randompkg.DateBetween(30, 365),
	}

	testCases := []struct {
		name    string
		mutate  func(arg *domain.CreateLoanParams)
		wantErr error
	}{
		{
			name:    "ErrOwnerNotFound",
			mutate:  func(arg *domain.CreateLoanParams) { arg.Owner = "no-such-owner" },
			wantErr: domain.ErrOwnerNotFound,
		},
		{
			name:    "ErrInvalidAmount",
			mutate:  func(arg *domain.CreateLoanParams) { arg.Principal = "0" },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "ErrInvalidInterestModel",
			mutate:  func(arg *domain.CreateLoanParams) { arg.InterestModel = "balloon" },
			wantErr: domain.ErrInvalidInterestModel,
		},
		{
			name:    "ErrInvalidPaymentFrequency",
			mutate:  func(arg *domain.CreateLoanParams) { arg.PaymentFrequency = "weekly" },
			wantErr: domain.ErrInvalidPaymentFrequency,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			arg := valid
			tc.mutate(&arg)

			_, err := loanRepo.Create(context.Background(), arg)
			require.EqualError(t, err, tc.wantErr.Error())
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	loan := test.SeedLoan(t, tx, user.Username, "5000")
	loanRepo := loanrepo.NewTxRepoPGS(tx)

	got, err := loanRepo.Get(context.Background(), loan.ID)
	require.NoError(t, err)
	require.Equal(t, loan.ID, got.ID)
	require.Equal(t, loan.Owner, got.Owner)
	require.Equal(t, loan.Principal, got.Principal)

	_, err = loanRepo.Get(context.Background(), 0)
	require.EqualError(t, err, domain.ErrLoanNotFound.Error())
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	loan := test.SeedLoan(t, tx, user.Username, "5000")
	loanRepo := loanrepo.NewTxRepoPGS(tx)

	closed, err := loanRepo.UpdateStatus(context.Background(), loan.ID, user.Username, domain.LoanStatusClosed)
	require.NoError(t, err)
	require.Equal(t, domain.LoanStatusClosed, closed.Status)

	_, err = loanRepo.UpdateStatus(context.Background(), loan.ID, "someone-else", domain.LoanStatusActive)
	require.EqualError(t, err, domain.ErrLoanNotFound.Error())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	loan := test.SeedLoan(t, tx, user.Username, "5000")
	loanRepo := loanrepo.NewTxRepoPGS(tx)

	err := loanRepo.Delete(context.Background(), loan.ID, user.Username)
	require.NoError(t, err)

	_, err = loanRepo.Get(context.Background(), loan.ID)
	require.EqualError(t, err, domain.ErrLoanNotFound.Error())

	err = loanRepo.Delete(context.Background(), loan.ID, user.Username)
	require.EqualError(t, err, domain.ErrLoanNotFound.Error())
}

func TestRepay(t *testing.T) {
	db := dbpkg.SetupDB(t, dbDriver, dbSource)
	user := test.SeedUser(t, db)
	account := test.SeedAccountWith1000Balance(t, db, user.Username)
	loan := test.SeedLoan(t, db, user.Username, "500")

	loanRepo := loanrepo.NewRepoPGS(db)

	result, err := loanRepo.Repay(context.Background(), loan.ID, account.ID, user.Username, "200")
	require.NoError(t, err)

	require.Equal(t, "200.00", result.Loan.PaidAmount)
	require.Equal(t, domain.KindExpense, result.Entry.Kind)
	require.Equal(t, "200.00", result.Entry.Amount)
	require.NotNil(t, result.Entry.LoanID)
	require.Equal(t, loan.ID, *result.Entry.LoanID)

	before := decimal.RequireFromString(account.Balance)
	after := decimal.RequireFromString(result.Account.Balance)
	require.True(t, before.Sub(decimal.NewFromInt(200)).Equal(after))
}

func TestRepayOverRemainingBalance(t *testing.T) {
	db := dbpkg.SetupDB(t, dbDriver, dbSource)
	user := test.SeedUser(t, db)
	account := test.SeedAccountWith1000Balance(t, db, user.Username)
	loan := test.SeedLoan(t, db, user.Username, "500")

	loanRepo := loanrepo.NewRepoPGS(db)

	_, err := loanRepo.Repay(context.Background(), loan.ID, account.ID, user.Username, "500.01")
	require.EqualError(t, err, domain.ErrOverRepayment.Error())

	// the rejected repayment must not touch the account
	accountRepo := accountrepo.NewRepoPGS(db)

	got, err := accountRepo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, account.Balance, got.Balance)
}

func TestRepayConcurrentCappedAtPrincipal(t *testing.T) {
	db := dbpkg.SetupDB(t, dbDriver, dbSource)
	user := test.SeedUser(t, db)
	account := test.SeedAccountWith1000Balance(t, db, user.Username)
	loan := test.SeedLoan(t, db, user.Username, "500")

	loanRepo := loanrepo.NewRepoPGS(db)

	// five concurrent repayments of 200 against a 500 principal:
	// exactly two can fit, the rest must fail with ErrOverRepayment
	n := 5
	errs := make(chan error)

	for i := 0; i < n; i++ {
		go func() {
			_, err := loanRepo.Repay(context.Background(), loan.ID, account.ID, user.Username, "200")
			errs <- err
		}()
	}

	var succeeded, rejected int

	for i := 0; i < n; i++ {
		switch err := <-errs; err {
		case nil:
			succeeded++
		case domain.ErrOverRepayment:
			rejected++
		default:
			t.Fatalf("loanRepo.Repay returned unexpected error: %v", err)
		}
	}

	require.Equal(t, 2, succeeded)
	require.Equal(t, 3, rejected)

	got, err := loanRepo.Get(context.Background(), loan.ID)
	require.NoError(t, err)
	require.Equal(t, "400.00", got.PaidAmount)
}