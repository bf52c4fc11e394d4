// Package goalservice manages business logic layer of savings goals.
package goalservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/accountdelivery"
	"github.com/go-petr/taka-track/internal/domain"
)

// Repo provides data access layer interface needed by goal service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package goalservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateGoalParams) (domain.Goal, error)
	Get(ctx context.Context, id int32) (domain.Goal, error)
	List(ctx context.Context, owner string) ([]domain.Goal, error)
	Delete(ctx context.Context, id int32, owner string) (bool, error)
	Contribute(ctx context.Context, goal domain.Goal, accountID int32, amount string) (domain.Entry, domain.Account, error)
}

// EntryRepo provides the ledger scan needed to derive goal progress.
type EntryRepo interface {
	ListCreatedSince(ctx context.Context, owner string, since time.Time) ([]domain.Entry, error)
}

// Service facilitates goal service layer logic.
type Service struct {
	repo           Repo
	entryRepo      EntryRepo
	accountService accountdelivery.Service
}

// New returns goal service struct to manage goal business logic.
func New(gr Repo, er EntryRepo, as accountdelivery.Service) *Service {
	return &Service{
		repo:           gr,
		entryRepo:      er,
		accountService: as,
	}
}

// Create validates and stores a new goal.
func (s *Service) Create(ctx context.Context, arg domain.CreateGoalParams) (domain.Goal, error) {
	l := zerolog.Ctx(ctx)

	target, err := decimal.NewFromString(arg.TargetAmount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Goal{}, domain.ErrInvalidAmount
	}

	if target.LessThanOrEqual(decimal.Zero) {
		return domain.Goal{}, domain.ErrNegativeAmount
	}

	if !arg.Deadline.IsZero() && arg.Deadline.Before(time.Now().Truncate(24*time.Hour)) {
		return domain.Goal{}, domain.ErrDeadlinePassed
	}

	return s.repo.Create(ctx, arg)
}

// ListWithProgress returns the owner's goals, each with its progress
// re-derived from the ledger.
func (s *Service) ListWithProgress(ctx context.Context, owner string) ([]domain.GoalWithProgress, error) {
	goals, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GoalWithProgress, 0, len(goals))

	for _, g := range goals {
		entries, err := s.entryRepo.ListCreatedSince(ctx, owner, g.CreatedAt)
		if err != nil {
			return nil, err
		}

		result = append(result, domain.GoalWithProgress{
			Goal:     g,
			Progress: domain.GoalProgress(g, entries).String(),
		})
	}

	return result, nil
}

// Contribute moves money from the given account into the goal's virtual
// balance: the account is debited and an income entry tagged with the goal
// is written, in one transaction. A contribution that completes the goal
// retires it immediately.
func (s *Service) Contribute(ctx context.Context, owner string, goalID, accountID int32, amount string) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Entry{}, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return domain.Entry{}, domain.ErrNegativeAmount
	}

	goal, err := s.repo.Get(ctx, goalID)
	if err != nil {
		return domain.Entry{}, err
	}

	if goal.Owner != owner {
		return domain.Entry{}, domain.ErrGoalNotFound
	}

	account, err := s.accountService.GetOwned(ctx, accountID, owner)
	if err != nil {
		return domain.Entry{}, err
	}

	balance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Entry{}, err
	}

	if balance.LessThan(amountDecimal) {
		return domain.Entry{}, domain.ErrInsufficientBalance
	}

	entry, _, err := s.repo.Contribute(ctx, goal, accountID, amountDecimal.Round(2).String())
	if err != nil {
		return domain.Entry{}, err
	}

	if _, err := s.SweepCompleted(ctx, owner); err != nil {
		l.Error().Err(err).Msg("goal sweep after contribution failed")
	}

	return entry, nil
}

// SweepCompleted re-derives progress for every goal of the owner and
// retires those whose progress reached the target, within a one-cent
// tolerance for accumulated rounding. Returns the goals it retired.
//
// Deletion is idempotent at the repo level, so two concurrent sweeps over
// the same completed goal retire it exactly once.
func (s *Service) SweepCompleted(ctx context.Context, owner string) ([]domain.Goal, error) {
	goals, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	var retired []domain.Goal

	for _, g := range goals {
		entries, err := s.entryRepo.ListCreatedSince(ctx, owner, g.CreatedAt)
		if err != nil {
			return retired, err
		}

		if !domain.GoalReached(g, domain.GoalProgress(g, entries)) {
			continue
		}

		deleted, err := s.repo.Delete(ctx, g.ID, owner)
		if err != nil {
			return retired, err
		}

		if deleted {
			retired = append(retired, g)
		}
	}

	return retired, nil
}

// Delete removes the owner's goal. Entries tagged with the goal survive.
func (s *Service) Delete(ctx context.Context, id int32, owner string) error {
	deleted, err := s.repo.Delete(ctx, id, owner)
	if err != nil {
		return err
	}

	if !deleted {
		return domain.ErrGoalNotFound
	}

	return nil
}
