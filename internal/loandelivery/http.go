// Package loandelivery manages delivery layer of loans.
package loandelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/middleware"
	"github.com/go-petr/taka-track/pkg/errorspkg"
	"github.com/go-petr/taka-track/pkg/loanmath"
	"github.com/go-petr/taka-track/pkg/tokenpkg"
	"github.com/go-petr/taka-track/pkg/web"
)

// Service provides service layer interface needed by loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error)
	ListWithPreview(ctx context.Context, owner string) ([]domain.LoanWithPreview, error)
	Repay(ctx context.Context, owner string, loanID, accountID int32, amount string) (domain.RepayLoanTxResult, error)
	SetStatus(ctx context.Context, id int32, owner, status string) (domain.Loan, error)
	Delete(ctx context.Context, id int32, owner string) error
	Preview(ctx context.Context, arg domain.CreateLoanParams) (loanmath.Result, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns loan handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

// ValidInterestModel validates that a request field holds a known interest
// model.
var ValidInterestModel validator.Func = func(fl validator.FieldLevel) bool {
	model, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	switch model {
	case loanmath.ModelSimple, loanmath.ModelCompound, loanmath.ModelEMI:
		return true
	}

	return false
}

// ValidPaymentFrequency validates that a request field holds a known
// payment frequency.
var ValidPaymentFrequency validator.Func = func(fl validator.FieldLevel) bool {
	frequency, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	switch frequency {
	case loanmath.FreqMonthly, loanmath.FreqQuarterly, loanmath.FreqHalfYearly, loanmath.FreqYearly:
		return true
	}

	return false
}

// ValidLoanStatus validates that a request field holds a known loan status.
var ValidLoanStatus validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return status == domain.LoanStatusActive || status == domain.LoanStatusClosed
}

type createRequest struct {
	Lender            string `json:"lender" binding:"required"`
	Purpose           string `json:"purpose"`
	Principal         string `json:"principal" binding:"required"`
	InterestRate      string `json:"interest_rate" binding:"required"`
	InterestModel     string `json:"interest_model" binding:"required,interestmodel"`
	PaymentFrequency  string `json:"payment_frequency" binding:"required,payfrequency"`
	StartDate         string `json:"start_date" binding:"required"`
	DueDate           string `json:"due_date" binding:"required"`
	GracePeriodMonths int32  `json:"grace_period_months" binding:"min=0"`
}

func (r createRequest) params(owner string) (domain.CreateLoanParams, error) {
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return domain.CreateLoanParams{}, errors.New("start_date must be a YYYY-MM-DD date")
	}

	dueDate, err := time.Parse("2006-01-02", r.DueDate)
	if err != nil {
		return domain.CreateLoanParams{}, errors.New("due_date must be a YYYY-MM-DD date")
	}

	return domain.CreateLoanParams{
		Owner:             owner,
		Lender:            r.Lender,
		Purpose:           r.Purpose,
		Principal:         r.Principal,
		InterestRate:      r.InterestRate,
		InterestModel:     r.InterestModel,
		PaymentFrequency:  r.PaymentFrequency,
		StartDate:         startDate,
		DueDate:           dueDate,
		GracePeriodMonths: r.GracePeriodMonths,
	}, nil
}

type data struct {
	Loan domain.Loan `json:"loan"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

func bindingError(gctx *gin.Context, l *zerolog.Logger, err error) {
	var (
		ve     validator.ValidationErrors
		errMsg string
	)

	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)
	}

	l.Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})
}

// Create handles http request to create a loan.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg, err := req.params(authPayload.Username)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	loan, err := h.service.Create(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrInvalidInterestModel,
			domain.ErrInvalidPaymentFrequency:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{loan}})
}

type dataLoans struct {
	Loans []domain.LoanWithPreview `json:"loans"`
}

type responseLoans struct {
	Data dataLoans `json:"data,omitempty"`
}

// List handles http request to list the caller's loans with derived
// repayment figures.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	loans, err := h.service.ListWithPreview(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseLoans{Data: dataLoans{loans}})
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type repayRequest struct {
	AccountID int32  `json:"account_id" binding:"required,min=1"`
	Amount    string `json:"amount" binding:"required"`
}

type dataRepay struct {
	Repayment domain.RepayLoanTxResult `json:"repayment"`
}

type responseRepay struct {
	Data dataRepay `json:"data,omitempty"`
}

// Repay handles http request to repay part of a loan from an account.
func (h *Handler) Repay(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req repayRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Repay(ctx, authPayload.Username, uri.ID, req.AccountID, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrLoanNotFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrAccountOwnerMismatch:
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrLoanClosed:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInsufficientBalance, domain.ErrOverRepayment:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseRepay{Data: dataRepay{result}})
}

type statusRequest struct {
	Status string `json:"status" binding:"required,loanstatus"`
}

// SetStatus handles http request to toggle a loan between active and
// closed.
func (h *Handler) SetStatus(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req statusRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	loan, err := h.service.SetStatus(ctx, uri.ID, authPayload.Username, req.Status)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrLoanNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidLoanStatus:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{loan}})
}

// Delete handles http request to delete a loan. Repayment entries survive
// as ordinary history.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.Delete(ctx, uri.ID, authPayload.Username); err != nil {
		switch err {
		case domain.ErrLoanNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}

type dataPreview struct {
	TotalRepayment          float64 `json:"total_repayment"`
	InterestAmount          float64 `json:"interest_amount"`
	NextInstallmentInterest float64 `json:"next_installment_interest"`
}

type responsePreview struct {
	Data dataPreview `json:"data,omitempty"`
}

// Preview handles http request to compute repayment figures for loan terms
// without creating the loan.
func (h *Handler) Preview(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg, err := req.params(authPayload.Username)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	result, err := h.service.Preview(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAmount,
			domain.ErrInvalidInterestModel,
			domain.ErrInvalidPaymentFrequency:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responsePreview{
		Data: dataPreview{
			TotalRepayment:          result.TotalRepayment,
			InterestAmount:          result.InterestAmount,
			NextInstallmentInterest: result.NextInstallmentInterest,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
