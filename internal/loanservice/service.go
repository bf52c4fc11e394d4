// Package loanservice manages business logic layer of loans.
package loanservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/taka-track/internal/accountdelivery"
	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/pkg/loanmath"
)

// Repo provides data access layer interface needed by loan service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package loanservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error)
	Get(ctx context.Context, id int32) (domain.Loan, error)
	List(ctx context.Context, owner string) ([]domain.Loan, error)
	UpdateStatus(ctx context.Context, id int32, owner, status string) (domain.Loan, error)
	Delete(ctx context.Context, id int32, owner string) error
	Repay(ctx context.Context, loanID, accountID int32, owner, amount string) (domain.RepayLoanTxResult, error)
}

// Service facilitates loan service layer logic.
type Service struct {
	repo           Repo
	accountService accountdelivery.Service
}

// New returns loan service struct to manage loan business logic.
func New(lr Repo, as accountdelivery.Service) *Service {
	return &Service{
		repo:           lr,
		accountService: as,
	}
}

func validModel(model string) bool {
	switch model {
	case loanmath.ModelSimple, loanmath.ModelCompound, loanmath.ModelEMI:
		return true
	}

	return false
}

func validFrequency(frequency string) bool {
	switch frequency {
	case loanmath.FreqMonthly, loanmath.FreqQuarterly, loanmath.FreqHalfYearly, loanmath.FreqYearly:
		return true
	}

	return false
}

// Create validates and stores a new loan.
func (s *Service) Create(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	principal, err := decimal.NewFromString(arg.Principal)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Loan{}, domain.ErrInvalidAmount
	}

	if principal.LessThanOrEqual(decimal.Zero) {
		return domain.Loan{}, domain.ErrNegativeAmount
	}

	rate, err := decimal.NewFromString(arg.InterestRate)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Loan{}, domain.ErrInvalidAmount
	}

	if rate.IsNegative() {
		return domain.Loan{}, domain.ErrNegativeAmount
	}

	if !validModel(arg.InterestModel) {
		return domain.Loan{}, domain.ErrInvalidInterestModel
	}

	if !validFrequency(arg.PaymentFrequency) {
		return domain.Loan{}, domain.ErrInvalidPaymentFrequency
	}

	arg.Principal = principal.Round(2).String()

	return s.repo.Create(ctx, arg)
}

// Preview computes the repayment figures the given loan terms would have,
// without persisting anything.
func (s *Service) Preview(ctx context.Context, arg domain.CreateLoanParams) (loanmath.Result, error) {
	l := zerolog.Ctx(ctx)

	principal, err := decimal.NewFromString(arg.Principal)
	if err != nil {
		l.Info().Err(err).Send()
		return loanmath.Result{}, domain.ErrInvalidAmount
	}

	rate, err := decimal.NewFromString(arg.InterestRate)
	if err != nil {
		l.Info().Err(err).Send()
		return loanmath.Result{}, domain.ErrInvalidAmount
	}

	if !validModel(arg.InterestModel) {
		return loanmath.Result{}, domain.ErrInvalidInterestModel
	}

	if !validFrequency(arg.PaymentFrequency) {
		return loanmath.Result{}, domain.ErrInvalidPaymentFrequency
	}

	result := loanmath.Amortize(
		principal.InexactFloat64(),
		rate.InexactFloat64(),
		arg.InterestModel,
		arg.StartDate,
		arg.DueDate,
		int(arg.GracePeriodMonths),
		arg.PaymentFrequency,
	)

	return result, nil
}

// ListWithPreview returns the owner's loans, each with its remaining
// balance and the amortization figures re-derived from the loan terms.
func (s *Service) ListWithPreview(ctx context.Context, owner string) ([]domain.LoanWithPreview, error) {
	l := zerolog.Ctx(ctx)

	loans, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	result := make([]domain.LoanWithPreview, 0, len(loans))

	for _, loan := range loans {
		principal, err := decimal.NewFromString(loan.Principal)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, err
		}

		rate, err := decimal.NewFromString(loan.InterestRate)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, err
		}

		paid, err := decimal.NewFromString(loan.PaidAmount)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, err
		}

		figures := loanmath.Amortize(
			principal.InexactFloat64(),
			rate.InexactFloat64(),
			loan.InterestModel,
			loan.StartDate,
			loan.DueDate,
			int(loan.GracePeriodMonths),
			loan.PaymentFrequency,
		)

		result = append(result, domain.LoanWithPreview{
			Loan:                    loan,
			RemainingBalance:        principal.Sub(paid).String(),
			TotalRepayment:          decimal.NewFromFloat(figures.TotalRepayment).Round(2).String(),
			InterestAmount:          decimal.NewFromFloat(figures.InterestAmount).Round(2).String(),
			NextInstallmentInterest: decimal.NewFromFloat(figures.NextInstallmentInterest).Round(2).String(),
		})
	}

	return result, nil
}

// Repay validates a repayment against the loan and the funding account,
// then runs the repayment transaction. The repo serializes concurrent
// repayments on the same loan and enforces the over-repayment cap under
// lock, so the checks here only exist to fail fast with a precise error.
func (s *Service) Repay(ctx context.Context, owner string, loanID, accountID int32, amount string) (domain.RepayLoanTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.RepayLoanTxResult

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return result, domain.ErrNegativeAmount
	}

	loan, err := s.repo.Get(ctx, loanID)
	if err != nil {
		return result, err
	}

	if loan.Owner != owner {
		return result, domain.ErrLoanNotFound
	}

	if loan.Status == domain.LoanStatusClosed {
		return result, domain.ErrLoanClosed
	}

	account, err := s.accountService.GetOwned(ctx, accountID, owner)
	if err != nil {
		return result, err
	}

	balance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if balance.LessThan(amountDecimal) {
		return result, domain.ErrInsufficientBalance
	}

	return s.repo.Repay(ctx, loanID, accountID, owner, amountDecimal.Round(2).String())
}

// SetStatus toggles the loan between active and closed.
func (s *Service) SetStatus(ctx context.Context, id int32, owner, status string) (domain.Loan, error) {
	if status != domain.LoanStatusActive && status != domain.LoanStatusClosed {
		return domain.Loan{}, domain.ErrInvalidLoanStatus
	}

	return s.repo.UpdateStatus(ctx, id, owner, status)
}

// Delete removes the owner's loan. Entries recorded against the loan
// survive as ordinary ledger history.
func (s *Service) Delete(ctx context.Context, id int32, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
