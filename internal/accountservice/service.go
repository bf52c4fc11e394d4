// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, owner, name, accType, balance string) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	List(ctx context.Context, owner string, limit, offset int32) ([]domain.Account, error)
	Delete(ctx context.Context, id int32, owner string) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns an account with the given opening balance.
func (s *Service) Create(ctx context.Context, owner, name, accType, balance string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	opening, err := decimal.NewFromString(balance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if opening.IsNegative() {
		return domain.Account{}, domain.ErrNegativeAmount
	}

	return s.repo.Create(ctx, owner, name, accType, opening.Round(2).String())
}

// Get returns the account for the given account ID.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// GetOwned returns the account if it belongs to the given owner.
func (s *Service) GetOwned(ctx context.Context, id int32, owner string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	if account.Owner != owner {
		return domain.Account{}, domain.ErrAccountOwnerMismatch
	}

	return account, nil
}

// List returns accounts that are owned by the given user.
func (s *Service) List(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.Account, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, owner, limit, offset)
}

// Delete removes the owner's account.
func (s *Service) Delete(ctx context.Context, id int32, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
