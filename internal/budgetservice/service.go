// Package budgetservice manages business logic layer of budgets.
package budgetservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/domain"
)

// Repo provides data access layer interface needed by budget service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package budgetservice
type Repo interface {
	CreateReplacing(ctx context.Context, arg domain.CreateBudgetParams) (domain.Budget, error)
	GetCurrent(ctx context.Context, owner string, categoryID *int32) (domain.Budget, error)
	List(ctx context.Context, owner string) ([]domain.Budget, error)
	Delete(ctx context.Context, id int32, owner string) error
}

// EntryRepo provides the ledger scan needed to derive budget spend.
type EntryRepo interface {
	ListExpensesInPeriod(ctx context.Context, owner string, categoryID *int32, start, end time.Time, createdSince, asOf time.Time) ([]domain.Entry, error)
}

// Service facilitates budget service layer logic.
type Service struct {
	repo      Repo
	entryRepo EntryRepo
}

// New returns budget service struct to manage budget business logic.
func New(br Repo, er EntryRepo) *Service {
	return &Service{
		repo:      br,
		entryRepo: er,
	}
}

// Set creates the budget for the (owner, category) scope, retiring any
// previous budget for the same scope.
func (s *Service) Set(ctx context.Context, arg domain.CreateBudgetParams) (domain.Budget, error) {
	l := zerolog.Ctx(ctx)

	limit, err := decimal.NewFromString(arg.AmountLimit)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Budget{}, domain.ErrInvalidAmount
	}

	if limit.LessThanOrEqual(decimal.Zero) {
		return domain.Budget{}, domain.ErrNegativeAmount
	}

	if arg.StartDate.After(arg.EndDate) {
		return domain.Budget{}, domain.ErrInvalidBudgetPeriod
	}

	return s.repo.CreateReplacing(ctx, arg)
}

// EvaluateSpend re-derives the spend against the current budget of the
// given scope from the ledger as of the given time.
//
// Spend counts expense entries whose logical date lies within the budget
// period and that were created no earlier than the budget itself, so
// pre-existing expenses never count toward a brand-new budget. The scan
// repeats in full on every call; no counter is maintained that could drift
// from the ledger.
func (s *Service) EvaluateSpend(ctx context.Context, owner string, categoryID *int32, asOf time.Time) (domain.BudgetWithSpend, error) {
	l := zerolog.Ctx(ctx)

	var result domain.BudgetWithSpend

	budget, err := s.repo.GetCurrent(ctx, owner, categoryID)
	if err != nil {
		return result, err
	}

	entries, err := s.entryRepo.ListExpensesInPeriod(ctx,
		owner,
		categoryID,
		budget.StartDate,
		budget.EndDate,
		budget.CreatedAt,
		asOf,
	)
	if err != nil {
		return result, err
	}

	spent := decimal.Zero

	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			l.Error().Err(err).Msgf("entry %d has malformed amount %q", e.ID, e.Amount)
			continue
		}

		spent = spent.Add(amount)
	}

	limit, err := decimal.NewFromString(budget.AmountLimit)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	result.Budget = budget
	result.Spent = spent.Round(2).String()
	result.Overspent = spent.GreaterThan(limit)

	return result, nil
}

// CheckExpense reports whether posting an additional expense of the given
// amount would push the current whole-account budget past its limit.
//
// The answer is advisory only: the caller decides whether to proceed,
// adjust the budget, or delete it. Absence of a budget is not an error
// here; it simply means there is nothing to warn about.
func (s *Service) CheckExpense(ctx context.Context, owner, amount string, asOf time.Time) (domain.BudgetWithSpend, bool, error) {
	snapshot, err := s.EvaluateSpend(ctx, owner, nil, asOf)
	if err != nil {
		if err == domain.ErrBudgetNotFound {
			return snapshot, false, nil
		}

		return snapshot, false, err
	}

	expense, err := decimal.NewFromString(amount)
	if err != nil {
		return snapshot, false, domain.ErrInvalidAmount
	}

	spent, err := decimal.NewFromString(snapshot.Spent)
	if err != nil {
		return snapshot, false, err
	}

	limit, err := decimal.NewFromString(snapshot.AmountLimit)
	if err != nil {
		return snapshot, false, err
	}

	return snapshot, spent.Add(expense).GreaterThan(limit), nil
}

// List returns all of the owner's budgets.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Budget, error) {
	return s.repo.List(ctx, owner)
}

// Delete removes the owner's budget.
func (s *Service) Delete(ctx context.Context, id int32, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
