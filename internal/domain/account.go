// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountOwnerMismatch indicates that the account belongs to another user.
	ErrAccountOwnerMismatch = errors.New("account does not belong to the user")
	// ErrOwnerNotFound indicates that the owner for the account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrAccountReferenced indicates that the account still has ledger entries.
	ErrAccountReferenced = errors.New("account is referenced by ledger entries")
)

// Account holds the current balance of a user money pot.
//
// The balance always equals the opening balance plus the signed sum of all
// ledger entries referencing the account. It is mutated only inside the
// posting, transfer, contribution and repayment transactions.
type Account struct {
	ID        int32     `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
