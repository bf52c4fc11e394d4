// Package goalrepo manages repository layer of savings goals.
package goalrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/entryrepo"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/errorspkg"
)

// RepoPGS facilitates goal repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns goal RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns goal RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db, conn: db}
}

const createQuery = `
INSERT INTO
    goals (owner, name, target_amount, deadline)
VALUES
    ($1, $2, $3, $4)
RETURNING id, owner, name, target_amount, deadline, created_at
`

// Create creates the goal and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateGoalParams) (domain.Goal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Owner, arg.Name, arg.TargetAmount, arg.Deadline)

	var g domain.Goal

	err := row.Scan(
		&g.ID,
		&g.Owner,
		&g.Name,
		&g.TargetAmount,
		&g.Deadline,
		&g.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "goals_owner_fkey":
				return g, domain.ErrOwnerNotFound
			case "goals_target_amount_check":
				return g, domain.ErrInvalidAmount
			}
		}

		return g, errorspkg.ErrInternal
	}

	return g, nil
}

const getQuery = `
SELECT id, owner, name, target_amount, deadline, created_at
FROM goals
WHERE id = $1
`

// Get returns the goal with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Goal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var g domain.Goal

	err := row.Scan(
		&g.ID,
		&g.Owner,
		&g.Name,
		&g.TargetAmount,
		&g.Deadline,
		&g.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return g, domain.ErrGoalNotFound
		}

		l.Error().Err(err).Send()

		return g, errorspkg.ErrInternal
	}

	return g, nil
}

const listQuery = `
SELECT id, owner, name, target_amount, deadline, created_at
FROM goals
WHERE owner = $1
ORDER BY id
`

// List returns all of the owner's goals.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Goal, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Goal{}

	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(
			&g.ID,
			&g.Owner,
			&g.Name,
			&g.TargetAmount,
			&g.Deadline,
			&g.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM goals
WHERE id = $1 AND owner = $2
RETURNING id
`

// Delete removes the goal with the given id. It reports whether a row was
// actually deleted, so completion sweeps racing over the same goal resolve
// to exactly one winner.
func (r *RepoPGS) Delete(ctx context.Context, id int32, owner string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var deleted int32
	if err := r.db.QueryRowContext(ctx, deleteQuery, id, owner).Scan(&deleted); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		l.Error().Err(err).Send()

		return false, errorspkg.ErrInternal
	}

	return true, nil
}

// Contribute funds the goal from an account: it debits the account and
// appends an income entry tagged with the goal within a single database
// transaction. The entry counts toward the goal's derived progress while
// the accounts_balance_check constraint rejects overdrawing contributions.
func (r *RepoPGS) Contribute(ctx context.Context, goal domain.Goal, accountID int32, amount string) (domain.Entry, domain.Account, error) {
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

	accountRepo := accountrepo.NewRepoPGS(tx)
	entryRepo := entryrepo.NewTxRepoPGS(tx)

	account, err = accountRepo.AddBalance(ctx, "-"+amount, accountID)
	if err != nil {
		return entry, account, err
	}

	goalID := goal.ID
	entry, err = entryRepo.Create(ctx, domain.CreateEntryParams{
		Owner:       goal.Owner,
		AccountID:   accountID,
		GoalID:      &goalID,
		Amount:      amount,
		Kind:        domain.KindIncome,
		Description: fmt.Sprintf("Added money to goal: %s", goal.Name),
	})
	if err != nil {
		return entry, account, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return entry, account, errorspkg.ErrInternal
	}

	return entry, account, nil
}
