// Package budgetdelivery manages delivery layer of budgets.
package budgetdelivery

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
	"github.com/go-petr/taka-track/pkg/tokenpkg"
	"github.com/go-petr/taka-track/pkg/web"
)

// Service provides service layer interface needed by budget delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package budgetdelivery
type Service interface {
	Set(ctx context.Context, arg domain.CreateBudgetParams) (domain.Budget, error)
	EvaluateSpend(ctx context.Context, owner string, categoryID *int32, asOf time.Time) (domain.BudgetWithSpend, error)
	List(ctx context.Context, owner string) ([]domain.Budget, error)
	Delete(ctx context.Context, id int32, owner string) error
}

// Handler facilitates budget delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns budget handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
}

type setRequest struct {
	CategoryID  *int32 `json:"category_id"`
	AmountLimit string `json:"amount_limit" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type data struct {
	Budget domain.Budget `json:"budget"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Set handles http request to set a budget, replacing any current budget
// for the same scope.
func (h *Handler) Set(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req setRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
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

		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "start_date must be a YYYY-MM-DD date"})

		return
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "end_date must be a YYYY-MM-DD date"})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.CreateBudgetParams{
		Owner:       authPayload.Username,
		CategoryID:  req.CategoryID,
		AmountLimit: req.AmountLimit,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	budget, err := h.service.Set(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrInvalidBudgetPeriod:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCategoryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{budget}})
}

type currentRequest struct {
	CategoryID *int32 `form:"category_id"`
}

type dataCurrent struct {
	Budget domain.BudgetWithSpend `json:"budget"`
}

type responseCurrent struct {
	Data dataCurrent `json:"data,omitempty"`
}

// GetCurrent handles http request to read the current budget of a scope
// with its spend derived from the ledger.
func (h *Handler) GetCurrent(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req currentRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	budget, err := h.service.EvaluateSpend(ctx, authPayload.Username, req.CategoryID, time.Now())
	if err != nil {
		switch err {
		case domain.ErrBudgetNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseCurrent{Data: dataCurrent{budget}})
}

type dataBudgets struct {
	Budgets []domain.Budget `json:"budgets"`
}

type responseBudgets struct {
	Data dataBudgets `json:"data,omitempty"`
}

// List handles http request to list the caller's budgets.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	budgets, err := h.service.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseBudgets{Data: dataBudgets{budgets}})
}

type deleteRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Delete handles http request to delete a budget.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req deleteRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.Delete(ctx, req.ID, authPayload.Username); err != nil {
		switch err {
		case domain.ErrBudgetNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}
