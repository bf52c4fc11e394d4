// Package goaldelivery manages delivery layer of savings goals.
package goaldelivery

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

// Service provides service layer interface needed by goal delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package goaldelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateGoalParams) (domain.Goal, error)
	ListWithProgress(ctx context.Context, owner string) ([]domain.GoalWithProgress, error)
	Contribute(ctx context.Context, owner string, goalID, accountID int32, amount string) (domain.Entry, error)
	Delete(ctx context.Context, id int32, owner string) error
}

// Handler facilitates goal delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns goal handler.
func NewHandler(gs Service) Handler {
	return Handler{service: gs}
}

type createRequest struct {
	Name         string `json:"name" binding:"required"`
	TargetAmount string `json:"target_amount" binding:"required"`
	Deadline     string `json:"deadline"`
}

type data struct {
	Goal domain.Goal `json:"goal"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to create a goal.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
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

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.CreateGoalParams{
		Owner:        authPayload.Username,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Response{Error: "deadline must be a YYYY-MM-DD date"})

			return
		}

		arg.Deadline = deadline
	}

	goal, err := h.service.Create(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrDeadlinePassed:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{goal}})
}

type dataGoals struct {
	Goals []domain.GoalWithProgress `json:"goals"`
}

type responseGoals struct {
	Data dataGoals `json:"data,omitempty"`
}

// List handles http request to list the caller's goals with derived
// progress.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	goals, err := h.service.ListWithProgress(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseGoals{Data: dataGoals{goals}})
}

type contributeRequest struct {
	GoalID    int32  `json:"goal_id" binding:"required,min=1"`
	AccountID int32  `json:"account_id" binding:"required,min=1"`
	Amount    string `json:"amount" binding:"required"`
}

type dataEntry struct {
	Entry domain.Entry `json:"entry"`
}

type responseEntry struct {
	Data dataEntry `json:"data,omitempty"`
}

// Contribute handles http request to move money from an account into a
// goal.
func (h *Handler) Contribute(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req contributeRequest
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

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	entry, err := h.service.Contribute(ctx, authPayload.Username, req.GoalID, req.AccountID, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrGoalNotFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrAccountOwnerMismatch:
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseEntry{Data: dataEntry{entry}})
}

type deleteRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Delete handles http request to delete a goal. Ledger entries tagged with
// the goal are kept.
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
		case domain.ErrGoalNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}
