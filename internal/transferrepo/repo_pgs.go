// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/entryrepo"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/errorspkg"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transfer RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns transfer RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    transfers (owner, from_account_id, to_account_id, amount)
VALUES
    ($1, $2, $3, $4)
RETURNING id, owner, from_account_id, to_account_id, amount, created_at
`

// Create creates the transfer record and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Owner, arg.FromAccountID, arg.ToAccountID, arg.Amount)

	var t domain.Transfer
	err := row.Scan(
		&t.ID,
		&t.Owner,
		&t.FromAccountID,
		&t.ToAccountID,
		&t.Amount,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transfers_from_account_id_fkey", "transfers_to_account_id_fkey":
				return t, domain.ErrAccountNotFound
			case "transfers_amount_check":
				return t, domain.ErrInvalidAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listQuery = `
SELECT
	id, owner, from_account_id, to_account_id, amount, created_at
FROM transfers
WHERE owner = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// List returns the owner's transfers.
func (r *RepoPGS) List(ctx context.Context, owner string, limit, offset int32) ([]domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transfer{}

	for rows.Next() {
		var t domain.Transfer
		if err := rows.Scan(
			&t.ID,
			&t.Owner,
			&t.FromAccountID,
			&t.ToAccountID,
			&t.Amount,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// Transfer moves money between two accounts of one owner.
//
// It creates the transfer record, appends the transfer_out and transfer_in
// entries, and updates both account balances within a single database
// transaction: a crash mid-operation never leaves a debit without its
// matching credit.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

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

	transferRepo := NewTxRepoPGS(tx)
	entryRepo := entryrepo.NewTxRepoPGS(tx)
	accountRepo := accountrepo.NewRepoPGS(tx)

	result.Transfer, err = transferRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result.FromEntry, err = entryRepo.Create(ctx, domain.CreateEntryParams{
		Owner:      arg.Owner,
		AccountID:  arg.FromAccountID,
		CategoryID: arg.FromCategoryID,
		Amount:     arg.Amount,
		Kind:       domain.KindTransferOut,
	})
	if err != nil {
		return result, err
	}

	result.ToEntry, err = entryRepo.Create(ctx, domain.CreateEntryParams{
		Owner:      arg.Owner,
		AccountID:  arg.ToAccountID,
		CategoryID: arg.ToCategoryID,
		Amount:     arg.Amount,
		Kind:       domain.KindTransferIn,
	})
	if err != nil {
		return result, err
	}

	var fromAccount, toAccount domain.Account
	// To avoid deadlocks execute statements in consistent id order
	if arg.FromAccountID < arg.ToAccountID {
		fromAccount, toAccount, err = addBalances(ctx, accountRepo, addBalanceParams{
			account1ID: arg.FromAccountID,
			amount1:    "-" + arg.Amount,
			account2ID: arg.ToAccountID,
			amount2:    arg.Amount,
		})
	} else {
		toAccount, fromAccount, err = addBalances(ctx, accountRepo, addBalanceParams{
			account1ID: arg.ToAccountID,
			amount1:    arg.Amount,
			account2ID: arg.FromAccountID,
			amount2:    "-" + arg.Amount,
		})
	}

	if err != nil {
		return result, err
	}

	result.FromAccount, result.ToAccount = fromAccount, toAccount

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

type addBalanceParams struct {
	account1ID int32
	amount1    string
	account2ID int32
	amount2    string
}

func addBalances(ctx context.Context, r *accountrepo.RepoPGS, arg addBalanceParams) (domain.Account, domain.Account, error) {
	account1, err := r.AddBalance(ctx, arg.amount1, arg.account1ID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	account2, err := r.AddBalance(ctx, arg.amount2, arg.account2ID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return account1, account2, nil
}
