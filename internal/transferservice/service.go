// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/accountdelivery"
	"github.com/go-petr/taka-track/internal/domain"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
	List(ctx context.Context, owner string, limit, offset int32) ([]domain.Transfer, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo           Repo
	accountService accountdelivery.Service
}

// New returns transfer service struct to manage transfer business logic.
func New(tr Repo, as accountdelivery.Service) *Service {
	return &Service{
		repo:           tr,
		accountService: as,
	}
}

func (s *Service) validRequest(ctx context.Context, arg domain.CreateTransferParams) error {
	l := zerolog.Ctx(ctx)

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNegativeAmount
	}

	if arg.FromAccountID == arg.ToAccountID {
		return domain.ErrSameAccountTransfer
	}

	fromAccount, err := s.accountService.Get(ctx, arg.FromAccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return err
	}

	if fromAccount.Owner != arg.Owner {
		return domain.ErrInvalidOwner
	}

	balance, err := decimal.NewFromString(fromAccount.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if balance.LessThan(amount) {
		return domain.ErrInsufficientBalance
	}

	toAccount, err := s.accountService.Get(ctx, arg.ToAccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return err
	}

	// Both sides of the movement must stay inside the caller's own books.
	if toAccount.Owner != arg.Owner {
		return domain.ErrAccountOwnerMismatch
	}

	return nil
}

// Transfer checks if the transfer request is valid and then executes the
// atomic transfer transaction.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	if err := s.validRequest(ctx, arg); err != nil {
		return domain.TransferTxResult{}, err
	}

	return s.repo.Transfer(ctx, arg)
}

// List returns the owner's transfers.
func (s *Service) List(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.Transfer, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, owner, limit, offset)
}
