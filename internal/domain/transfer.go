package domain

import (
	"errors"
	"time"
)

var (
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSameAccountTransfer indicates that the destination equals the source.
	ErrSameAccountTransfer = errors.New("destination account equals source account")
	// ErrInvalidOwner indicates that the user does not own the account being debited.
	ErrInvalidOwner = errors.New("unauthorized owner")
	// ErrTransferNotFound indicates that the transfer is not found.
	ErrTransferNotFound = errors.New("transfer not found")
)

// Transfer records a two-sided movement between accounts of one user.
type Transfer struct {
	ID            int64     `json:"id"`
	Owner         string    `json:"owner"`
	FromAccountID int32     `json:"from_account_id"`
	ToAccountID   int32     `json:"to_account_id"`
	Amount        string    `json:"amount"` // must be positive
	CreatedAt     time.Time `json:"created_at"`
}

// CreateTransferParams is the input data for the transfer transaction.
type CreateTransferParams struct {
	Owner          string `json:"owner"`
	FromAccountID  int32  `json:"from_account_id"`
	ToAccountID    int32  `json:"to_account_id"`
	Amount         string `json:"amount"`
	FromCategoryID *int32 `json:"from_category_id,omitempty"`
	ToCategoryID   *int32 `json:"to_category_id,omitempty"`
}

// TransferTxResult is the result of the transfer transaction.
//
// Either all five records reflect the movement or none of them exist;
// the transaction never commits a debit without its matching credit.
type TransferTxResult struct {
	Transfer    Transfer `json:"transfer"`
	FromAccount Account  `json:"from_account"`
	ToAccount   Account  `json:"to_account"`
	FromEntry   Entry    `json:"from_entry"`
	ToEntry     Entry    `json:"to_entry"`
}
