// Package loanrepo manages repository layer of loans.
package loanrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/entryrepo"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/errorspkg"
)

// RepoPGS facilitates loan repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns loan RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns loan RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db, conn: db}
}

const loanColumns = `id, owner, lender, purpose, principal, interest_rate, interest_model,
	payment_frequency, start_date, due_date, grace_period_months, paid_amount, status, created_at`

func scanLoan(row *sql.Row) (domain.Loan, error) {
	var ln domain.Loan

	err := row.Scan(
		&ln.ID,
		&ln.Owner,
		&ln.Lender,
		&ln.Purpose,
		&ln.Principal,
		&ln.InterestRate,
		&ln.InterestModel,
		&ln.PaymentFrequency,
		&ln.StartDate,
		&ln.DueDate,
		&ln.GracePeriodMonths,
		&ln.PaidAmount,
		&ln.Status,
		&ln.CreatedAt,
	)

	return ln, err
}

const createQuery = `
INSERT INTO loans (
    owner, lender, purpose, principal, interest_rate, interest_model,
    payment_frequency, start_date, due_date, grace_period_months
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
) RETURNING ` + loanColumns

// Create creates the loan and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.Lender,
		arg.Purpose,
		arg.Principal,
		arg.InterestRate,
		arg.InterestModel,
		arg.PaymentFrequency,
		arg.StartDate,
		arg.DueDate,
		arg.GracePeriodMonths,
	)

	ln, err := scanLoan(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "loans_owner_fkey":
				return ln, domain.ErrOwnerNotFound
			case "loans_principal_check":
				return ln, domain.ErrInvalidAmount
			case "loans_interest_model_check":
				return ln, domain.ErrInvalidInterestModel
			case "loans_payment_frequency_check":
				return ln, domain.ErrInvalidPaymentFrequency
			}
		}

		return ln, errorspkg.ErrInternal
	}

	return ln, nil
}

const getQuery = `
SELECT ` + loanColumns + `
FROM loans
WHERE id = $1
`

// Get returns the loan with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	ln, err := scanLoan(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return ln, domain.ErrLoanNotFound
		}

		l.Error().Err(err).Send()

		return ln, errorspkg.ErrInternal
	}

	return ln, nil
}

const listQuery = `
SELECT ` + loanColumns + `
FROM loans
WHERE owner = $1
ORDER BY created_at DESC, id DESC
`

// List returns all of the owner's loans, newest first.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Loan{}

	for rows.Next() {
		var ln domain.Loan
		if err := rows.Scan(
			&ln.ID,
			&ln.Owner,
			&ln.Lender,
			&ln.Purpose,
			&ln.Principal,
			&ln.InterestRate,
			&ln.InterestModel,
			&ln.PaymentFrequency,
			&ln.StartDate,
			&ln.DueDate,
			&ln.GracePeriodMonths,
			&ln.PaidAmount,
			&ln.Status,
			&ln.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, ln)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateStatusQuery = `
UPDATE loans
SET status = $1
WHERE id = $2 AND owner = $3
RETURNING ` + loanColumns

// UpdateStatus sets the loan status and returns the updated loan.
func (r *RepoPGS) UpdateStatus(ctx context.Context, id int32, owner, status string) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	ln, err := scanLoan(r.db.QueryRowContext(ctx, updateStatusQuery, status, id, owner))
	if err != nil {
		if err == sql.ErrNoRows {
			return ln, domain.ErrLoanNotFound
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "loans_status_check" {
				return ln, domain.ErrInvalidLoanStatus
			}
		}

		return ln, errorspkg.ErrInternal
	}

	return ln, nil
}

const deleteQuery = `
DELETE FROM loans
WHERE id = $1 AND owner = $2
RETURNING id
`

// Delete removes the loan with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int32, owner string) error {
	l := zerolog.Ctx(ctx)

	var deleted int32
	if err := r.db.QueryRowContext(ctx, deleteQuery, id, owner).Scan(&deleted); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrLoanNotFound
		}

		l.Error().Err(err).Send()

		return errorspkg.ErrInternal
	}

	return nil
}

const getForUpdateQuery = `
SELECT ` + loanColumns + `
FROM loans
WHERE id = $1 AND owner = $2
FOR UPDATE
`

const addPaidAmountQuery = `
UPDATE loans
SET paid_amount = paid_amount + $1
WHERE id = $2
RETURNING ` + loanColumns

// Repay applies a repayment: it verifies the amount against the remaining
// loan balance, debits the account, bumps the loan's paid amount and
// appends the expense entry, all within one database transaction.
//
// The row lock taken by SELECT FOR UPDATE serializes concurrent repayments
// of the same loan, so the paid amount can never race past the principal.
func (r *RepoPGS) Repay(ctx context.Context, loanID, accountID int32, owner, amount string) (domain.RepayLoanTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.RepayLoanTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	entryRepo := entryrepo.NewTxRepoPGS(tx)

	loan, err := scanLoan(tx.QueryRowContext(ctx, getForUpdateQuery, loanID, owner))
	if err != nil {
		if err == sql.ErrNoRows {
			return result, domain.ErrLoanNotFound
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	remaining, err := remainingBalance(loan)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	repayment, err := decimal.NewFromString(amount)
	if err != nil {
		return result, domain.ErrInvalidAmount
	}

	if repayment.GreaterThan(remaining) {
		return result, domain.ErrOverRepayment
	}

	result.Account, err = accountRepo.AddBalance(ctx, "-"+amount, accountID)
	if err != nil {
		return result, err
	}

	result.Loan, err = scanLoan(tx.QueryRowContext(ctx, addPaidAmountQuery, amount, loan.ID))
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "loans_paid_amount_check" {
				return result, domain.ErrOverRepayment
			}
		}

		return result, errorspkg.ErrInternal
	}

	loanRef := loan.ID
	result.Entry, err = entryRepo.Create(ctx, domain.CreateEntryParams{
		Owner:       owner,
		AccountID:   accountID,
		LoanID:      &loanRef,
		Amount:      amount,
		Kind:        domain.KindExpense,
		Description: fmt.Sprintf("Loan repayment: %s", loan.Lender),
	})
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

func remainingBalance(loan domain.Loan) (decimal.Decimal, error) {
	principal, err := decimal.NewFromString(loan.Principal)
	if err != nil {
		return decimal.Zero, err
	}

	paid, err := decimal.NewFromString(loan.PaidAmount)
	if err != nil {
		return decimal.Zero, err
	}

	return principal.Sub(paid), nil
}
