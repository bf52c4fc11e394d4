// Package entryservice manages business logic layer of ledger entries.
package entryservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/accountdelivery"
	"github.com/go-petr/taka-track/internal/domain"
)

// Repo provides data access layer interface needed by entry service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package entryservice
type Repo interface {
	Post(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Entry, error)
	ListWithNames(ctx context.Context, owner string, limit, offset int32) ([]domain.EntryWithNames, error)
	ListByAccount(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Entry, error)
}

// CategoryRepo resolves categories referenced by new entries.
type CategoryRepo interface {
	Get(ctx context.Context, id int32) (domain.Category, error)
}

// GoalSweeper retires completed goals after the ledger changes.
type GoalSweeper interface {
	SweepCompleted(ctx context.Context, owner string) ([]domain.Goal, error)
}

// Service facilitates entry service layer logic.
type Service struct {
	repo           Repo
	categoryRepo   CategoryRepo
	accountService accountdelivery.Service
	sweeper        GoalSweeper
}

// New returns entry service struct to manage entry business logic.
func New(er Repo, cr CategoryRepo, as accountdelivery.Service, gs GoalSweeper) *Service {
	return &Service{
		repo:           er,
		categoryRepo:   cr,
		accountService: as,
		sweeper:        gs,
	}
}

// Create validates and posts an income or expense entry, updating the
// account balance atomically with the entry insert. Transfer-kind entries
// are written by the transfer flow only and are rejected here.
func (s *Service) Create(ctx context.Context, owner string, arg domain.CreateEntryParams) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	if arg.Kind != domain.KindIncome && arg.Kind != domain.KindExpense {
		return domain.Entry{}, domain.ErrInvalidEntryKind
	}

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Entry{}, domain.ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Entry{}, domain.ErrNegativeAmount
	}

	account, err := s.accountService.GetOwned(ctx, arg.AccountID, owner)
	if err != nil {
		return domain.Entry{}, err
	}

	if arg.Kind == domain.KindExpense {
		balance, err := decimal.NewFromString(account.Balance)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.Entry{}, err
		}

		if balance.LessThan(amount) {
			return domain.Entry{}, domain.ErrInsufficientBalance
		}
	}

	if arg.CategoryID != nil {
		category, err := s.categoryRepo.Get(ctx, *arg.CategoryID)
		if err != nil {
			return domain.Entry{}, err
		}

		if category.Owner != nil && *category.Owner != owner {
			return domain.Entry{}, domain.ErrCategoryNotFound
		}
	}

	arg.Amount = amount.Round(2).String()

	entry, _, err := s.repo.Post(ctx, arg)
	if err != nil {
		return domain.Entry{}, err
	}

	if arg.Kind == domain.KindIncome {
		if _, err := s.sweeper.SweepCompleted(ctx, owner); err != nil {
			l.Error().Err(err).Msg("goal sweep after income entry failed")
		}
	}

	return entry, nil
}

// Get returns the owner's entry.
func (s *Service) Get(ctx context.Context, id int64, owner string) (domain.Entry, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Entry{}, err
	}

	if entry.Owner != owner {
		return domain.Entry{}, domain.ErrEntryNotFound
	}

	return entry, nil
}

// ListWithNames returns the owner's entries across all accounts, newest
// first, with account and category names resolved for display.
func (s *Service) ListWithNames(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.EntryWithNames, error) {
	return s.repo.ListWithNames(ctx, owner, pageSize, (pageID-1)*pageSize)
}

// ListByAccount returns entries of the given account, newest first. The
// account must belong to the owner.
func (s *Service) ListByAccount(ctx context.Context, owner string, accountID, pageSize, pageID int32) ([]domain.Entry, error) {
	if _, err := s.accountService.GetOwned(ctx, accountID, owner); err != nil {
		return nil, err
	}

	return s.repo.ListByAccount(ctx, accountID, pageSize, (pageID-1)*pageSize)
}
