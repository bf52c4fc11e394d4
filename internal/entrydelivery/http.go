// Package entrydelivery manages delivery layer of ledger entries.
package entrydelivery

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

// Service provides service layer interface needed by entry delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package entrydelivery
type Service interface {
	Create(ctx context.Context, owner string, arg domain.CreateEntryParams) (domain.Entry, error)
	Get(ctx context.Context, id int64, owner string) (domain.Entry, error)
	ListWithNames(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.EntryWithNames, error)
}

// BudgetChecker reports whether an expense would push the current budget
// past its limit.
type BudgetChecker interface {
	CheckExpense(ctx context.Context, owner, amount string, asOf time.Time) (domain.BudgetWithSpend, bool, error)
}

// CategoryLister returns the categories available to an owner.
type CategoryLister interface {
	List(ctx context.Context, owner string) ([]domain.Category, error)
}

// Handler facilitates entry delivery layer logic.
type Handler struct {
	service       Service
	budgetChecker BudgetChecker
	categories    CategoryLister
}

// NewHandler returns entry handler.
func NewHandler(es Service, bc BudgetChecker, cl CategoryLister) Handler {
	return Handler{
		service:       es,
		budgetChecker: bc,
		categories:    cl,
	}
}

// ValidEntryKind validates that a request field holds a postable entry
// kind. Transfer kinds are reserved for the transfer flow.
var ValidEntryKind validator.Func = func(fl validator.FieldLevel) bool {
	kind, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return kind == string(domain.KindIncome) || kind == string(domain.KindExpense)
}

type createRequest struct {
	AccountID   int32  `json:"account_id" binding:"required,min=1"`
	CategoryID  *int32 `json:"category_id"`
	Amount      string `json:"amount" binding:"required"`
	Kind        string `json:"kind" binding:"required,entrykind"`
	Description string `json:"description"`
	EntryDate   string `json:"entry_date"`
}

type data struct {
	Entry         domain.Entry `json:"entry"`
	BudgetWarning string       `json:"budget_warning,omitempty"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to post an income or expense transaction.
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

	arg := domain.CreateEntryParams{
		Owner:       authPayload.Username,
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Kind:        domain.EntryKind(req.Kind),
		Description: req.Description,
	}

	if req.EntryDate != "" {
		entryDate, err := time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Response{Error: "entry_date must be a YYYY-MM-DD date"})

			return
		}

		arg.EntryDate = &entryDate
	}

	var warning string

	if arg.Kind == domain.KindExpense {
		snapshot, overspend, err := h.budgetChecker.CheckExpense(ctx, authPayload.Username, req.Amount, time.Now())
		if err != nil && err != domain.ErrInvalidAmount {
			l.Warn().Err(err).Msg("budget check failed")
		}

		if overspend {
			warning = "this expense exceeds the budget limit of " + snapshot.AmountLimit
		}
	}

	entry, err := h.service.Create(ctx, authPayload.Username, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrAccountOwnerMismatch:
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		case domain.ErrAccountNotFound, domain.ErrCategoryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrInvalidEntryKind:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{Entry: entry, BudgetWarning: warning}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to read a single entry.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	entry, err := h.service.Get(ctx, req.ID, authPayload.Username)
	if err != nil {
		switch err {
		case domain.ErrEntryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{Entry: entry}})
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataEntries struct {
	Entries []domain.EntryWithNames `json:"entries"`
}

type responseEntries struct {
	Data dataEntries `json:"data,omitempty"`
}

// List handles http request to read the transaction history across all of
// the caller's accounts, newest first.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	entries, err := h.service.ListWithNames(ctx, authPayload.Username, req.PageSize, req.PageID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseEntries{Data: dataEntries{entries}})
}

type dataCategories struct {
	Categories []domain.Category `json:"categories"`
}

type responseCategories struct {
	Data dataCategories `json:"data,omitempty"`
}

// ListCategories handles http request to list the categories available to
// the caller: the shared defaults plus their own.
func (h *Handler) ListCategories(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	categories, err := h.categories.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseCategories{Data: dataCategories{categories}})
}
