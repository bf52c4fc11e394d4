// Package entryrepo manages repository layer of ledger entries.
package entryrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/errorspkg"
)

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns entry RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns entry RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db, conn: db}
}

const createQuery = `
INSERT INTO
    entries (owner, account_id, category_id, loan_id, goal_id, amount, kind, description, entry_date)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, owner, account_id, category_id, loan_id, goal_id, amount, kind, description, entry_date, created_at
`

// Create appends the entry to the ledger and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.AccountID,
		arg.CategoryID,
		arg.LoanID,
		arg.GoalID,
		arg.Amount,
		arg.Kind,
		arg.Description,
		arg.EntryDate,
	)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.Owner,
		&e.AccountID,
		&e.CategoryID,
		&e.LoanID,
		&e.GoalID,
		&e.Amount,
		&e.Kind,
		&e.Description,
		&e.EntryDate,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "entries_account_id_fkey":
				return e, domain.ErrAccountNotFound
			case "entries_category_id_fkey":
				return e, domain.ErrCategoryNotFound
			case "entries_amount_check":
				return e, domain.ErrInvalidAmount
			case "entries_kind_check":
				return e, domain.ErrInvalidEntryKind
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

// Post executes an ordinary transaction posting: it appends the entry and
// applies its signed effect to the account balance within a single database
// transaction, so neither change can commit without the other.
func (r *RepoPGS) Post(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var (
		entry   domain.Entry
		account domain.Account
	)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return entry, account, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	entryRepo := NewTxRepoPGS(tx)
	accountRepo := accountrepo.NewRepoPGS(tx)

	entry, err = entryRepo.Create(ctx, arg)
	if err != nil {
		return entry, account, err
	}

	delta := arg.Amount
	if arg.Kind.Sign() < 0 {
		delta = "-" + arg.Amount
	}

	account, err = accountRepo.AddBalance(ctx, delta, arg.AccountID)
	if err != nil {
		return entry, account, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return entry, account, errorspkg.ErrInternal
	}

	return entry, account, nil
}

const getQuery = `
SELECT id, owner, account_id, category_id, loan_id, goal_id, amount, kind, description, entry_date, created_at
FROM entries
WHERE id = $1
`

// Get returns the entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.Owner,
		&e.AccountID,
		&e.CategoryID,
		&e.LoanID,
		&e.GoalID,
		&e.Amount,
		&e.Kind,
		&e.Description,
		&e.EntryDate,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listWithNamesQuery = `
SELECT
	e.id, e.owner, e.account_id, e.category_id, e.loan_id, e.goal_id,
	e.amount, e.kind, e.description, e.entry_date, e.created_at,
	a.name, COALESCE(c.name, '')
FROM entries e
JOIN accounts a ON e.account_id = a.id
LEFT JOIN categories c ON e.category_id = c.id
WHERE e.owner = $1
ORDER BY e.created_at DESC, e.id DESC
LIMIT $2 OFFSET $3
`

// ListWithNames returns the owner's transaction history with resolved
// account and category names, newest first.
func (r *RepoPGS) ListWithNames(ctx context.Context, owner string, limit, offset int32) ([]domain.EntryWithNames, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listWithNamesQuery, owner, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.EntryWithNames{}

	for rows.Next() {
		var e domain.EntryWithNames
		if err := rows.Scan(
			&e.ID,
			&e.Owner,
			&e.AccountID,
			&e.CategoryID,
			&e.LoanID,
			&e.GoalID,
			&e.Amount,
			&e.Kind,
			&e.Description,
			&e.EntryDate,
			&e.CreatedAt,
			&e.AccountName,
			&e.CategoryName,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listByAccountQuery = `
SELECT id, owner, account_id, category_id, loan_id, goal_id, amount, kind, description, entry_date, created_at
FROM entries
WHERE account_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// ListByAccount returns the specified number of entries for the given account.
func (r *RepoPGS) ListByAccount(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Entry, error) {
	return r.list(ctx, listByAccountQuery, accountID, limit, offset)
}

const listExpensesInPeriodQuery = `
SELECT id, owner, account_id, category_id, loan_id, goal_id, amount, kind, description, entry_date, created_at
FROM entries
WHERE
	owner = $1
	AND kind = 'expense'
	AND ($2::int IS NULL OR category_id = $2)
	AND COALESCE(entry_date, created_at::date) BETWEEN $3 AND $4
	AND created_at >= $5
	AND created_at <= $6
ORDER BY id
`

// ListExpensesInPeriod returns the owner's expense entries whose logical
// date falls within [start, end], that were created at or after
// createdSince, and not after asOf. A nil categoryID matches expenses of
// any category (the whole-account budget scope).
func (r *RepoPGS) ListExpensesInPeriod(ctx context.Context, owner string, categoryID *int32, start, end time.Time, createdSince, asOf time.Time) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listExpensesInPeriodQuery, owner, categoryID, start, end, createdSince, asOf)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(l, rows)
}

const listCreatedSinceQuery = `
SELECT id, owner, account_id, category_id, loan_id, goal_id, amount, kind, description, entry_date, created_at
FROM entries
WHERE owner = $1 AND created_at >= $2
ORDER BY id
`

// ListCreatedSince returns all entries of the owner created at or after the
// given time. Used for goal progress derivation.
func (r *RepoPGS) ListCreatedSince(ctx context.Context, owner string, since time.Time) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listCreatedSinceQuery, owner, since)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(l, rows)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(l, rows)
}

func scanEntries(l *zerolog.Logger, rows *sql.Rows) ([]domain.Entry, error) {
	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID,
			&e.Owner,
			&e.AccountID,
			&e.CategoryID,
			&e.LoanID,
			&e.GoalID,
			&e.Amount,
			&e.Kind,
			&e.Description,
			&e.EntryDate,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
