// Package budgetrepo manages repository layer of budgets.
package budgetrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/errorspkg"
)

// RepoPGS facilitates budget repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns budget RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns budget RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db, conn: db}
}

const createQuery = `
INSERT INTO
    budgets (owner, category_id, amount_limit, start_date, end_date)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, owner, category_id, amount_limit, start_date, end_date, created_at
`

const retireQuery = `
DELETE FROM budgets
WHERE owner = $1 AND category_id IS NOT DISTINCT FROM $2
`

// CreateReplacing sets the budget for the (owner, category) scope,
// retiring any existing budget for the same scope first. Both steps run in
// one database transaction so the scope never holds two current budgets.
// A repo bound to an ongoing transaction runs them within that transaction.
func (r *RepoPGS) CreateReplacing(ctx context.Context, arg domain.CreateBudgetParams) (domain.Budget, error) {
	l := zerolog.Ctx(ctx)

	if r.conn == nil {
		return r.createReplacing(ctx, r.db, arg)
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Budget{}, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	b, err := r.createReplacing(ctx, tx, arg)
	if err != nil {
		return b, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return b, errorspkg.ErrInternal
	}

	return b, nil
}

func (r *RepoPGS) createReplacing(ctx context.Context, db dbpkg.SQLInterface, arg domain.CreateBudgetParams) (domain.Budget, error) {
	l := zerolog.Ctx(ctx)

	var b domain.Budget

	if _, err := db.ExecContext(ctx, retireQuery, arg.Owner, arg.CategoryID); err != nil {
		l.Error().Err(err).Send()
		return b, errorspkg.ErrInternal
	}

	row := db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.CategoryID,
		arg.AmountLimit,
		arg.StartDate,
		arg.EndDate,
	)

	err := row.Scan(
		&b.ID,
		&b.Owner,
		&b.CategoryID,
		&b.AmountLimit,
		&b.StartDate,
		&b.EndDate,
		&b.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("CreateReplacing(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "budgets_owner_fkey":
				return b, domain.ErrOwnerNotFound
			case "budgets_category_id_fkey":
				return b, domain.ErrCategoryNotFound
			case "budgets_amount_limit_check":
				return b, domain.ErrInvalidAmount
			}
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const getCurrentQuery = `
SELECT
	id, owner, category_id, amount_limit, start_date, end_date, created_at
FROM budgets
WHERE owner = $1 AND category_id IS NOT DISTINCT FROM $2
`

// GetCurrent returns the owner's current budget for the given scope. A nil
// categoryID addresses the whole-account budget.
func (r *RepoPGS) GetCurrent(ctx context.Context, owner string, categoryID *int32) (domain.Budget, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getCurrentQuery, owner, categoryID)

	var b domain.Budget

	err := row.Scan(
		&b.ID,
		&b.Owner,
		&b.CategoryID,
		&b.AmountLimit,
		&b.StartDate,
		&b.EndDate,
		&b.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return b, domain.ErrBudgetNotFound
		}

		l.Error().Err(err).Send()

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const listQuery = `
SELECT
	id, owner, category_id, amount_limit, start_date, end_date, created_at
FROM budgets
WHERE owner = $1
ORDER BY id
`

// List returns all of the owner's budgets.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Budget, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Budget{}

	for rows.Next() {
		var b domain.Budget
		if err := rows.Scan(
			&b.ID,
			&b.Owner,
			&b.CategoryID,
			&b.AmountLimit,
			&b.StartDate,
			&b.EndDate,
			&b.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM budgets
WHERE id = $1 AND owner = $2
RETURNING id
`

// Delete removes the budget with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int32, owner string) error {
	l := zerolog.Ctx(ctx)

	var deleted int32
	if err := r.db.QueryRowContext(ctx, deleteQuery, id, owner).Scan(&deleted); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrBudgetNotFound
		}

		l.Error().Err(err).Send()

		return errorspkg.ErrInternal
	}

	return nil
}
