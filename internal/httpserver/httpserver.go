// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/accountdelivery"
	"github.com/go-petr/taka-track/internal/accountrepo"
	"github.com/go-petr/taka-track/internal/accountservice"
	"github.com/go-petr/taka-track/internal/budgetdelivery"
	"github.com/go-petr/taka-track/internal/budgetrepo"
	"github.com/go-petr/taka-track/internal/budgetservice"
	"github.com/go-petr/taka-track/internal/categoryrepo"
	"github.com/go-petr/taka-track/internal/entrydelivery"
	"github.com/go-petr/taka-track/internal/entryrepo"
	"github.com/go-petr/taka-track/internal/entryservice"
	"github.com/go-petr/taka-track/internal/goaldelivery"
	"github.com/go-petr/taka-track/internal/goalrepo"
	"github.com/go-petr/taka-track/internal/goalservice"
	"github.com/go-petr/taka-track/internal/loandelivery"
	"github.com/go-petr/taka-track/internal/loanrepo"
	"github.com/go-petr/taka-track/internal/loanservice"
	"github.com/go-petr/taka-track/internal/middleware"
	"github.com/go-petr/taka-track/internal/sessiondelivery"
	"github.com/go-petr/taka-track/internal/sessionrepo"
	"github.com/go-petr/taka-track/internal/sessionservice"
	"github.com/go-petr/taka-track/internal/transferdelivery"
	"github.com/go-petr/taka-track/internal/transferrepo"
	"github.com/go-petr/taka-track/internal/transferservice"
	"github.com/go-petr/taka-track/internal/userdelivery"
	"github.com/go-petr/taka-track/internal/userrepo"
	"github.com/go-petr/taka-track/internal/userservice"
	"github.com/go-petr/taka-track/pkg/configpkg"
	"github.com/go-petr/taka-track/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	categoryRepo := categoryrepo.NewRepoPGS(conn)
	entryRepo := entryrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	budgetRepo := budgetrepo.NewRepoPGS(conn)
	goalRepo := goalrepo.NewRepoPGS(conn)
	loanRepo := loanrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	accountService := accountservice.New(accountRepo)
	transferService := transferservice.New(transferRepo, accountService)
	budgetService := budgetservice.New(budgetRepo, entryRepo)
	goalService := goalservice.New(goalRepo, entryRepo, accountService)
	entryService := entryservice.New(entryRepo, categoryRepo, accountService, goalService)
	loanService := loanservice.New(loanRepo, accountService)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	accountHandler := accountdelivery.NewHandler(accountService)
	entryHandler := entrydelivery.NewHandler(entryService, budgetService, categoryRepo)
	transferHandler := transferdelivery.NewHandler(transferService)
	budgetHandler := budgetdelivery.NewHandler(budgetService)
	goalHandler := goaldelivery.NewHandler(goalService)
	loanHandler := loandelivery.NewHandler(loanService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.POST("/accounts", accountHandler.Create)
	authRoutes.GET("/accounts/:id", accountHandler.Get)
	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.DELETE("/accounts/:id", accountHandler.Delete)

	authRoutes.GET("/categories", entryHandler.ListCategories)

	authRoutes.POST("/entries", entryHandler.Create)
	authRoutes.GET("/entries/:id", entryHandler.Get)
	authRoutes.GET("/entries", entryHandler.List)

	authRoutes.POST("/transfers", transferHandler.Create)
	authRoutes.GET("/transfers", transferHandler.List)

	authRoutes.POST("/budgets", budgetHandler.Set)
	authRoutes.GET("/budgets", budgetHandler.List)
	authRoutes.GET("/budgets/current", budgetHandler.GetCurrent)
	authRoutes.DELETE("/budgets/:id", budgetHandler.Delete)

	authRoutes.POST("/goals", goalHandler.Create)
	authRoutes.GET("/goals", goalHandler.List)
	authRoutes.POST("/goals/contribute", goalHandler.Contribute)
	authRoutes.DELETE("/goals/:id", goalHandler.Delete)

	authRoutes.POST("/loans", loanHandler.Create)
	authRoutes.GET("/loans", loanHandler.List)
	authRoutes.POST("/loans/preview", loanHandler.Preview)
	authRoutes.POST("/loans/:id/repay", loanHandler.Repay)
	authRoutes.PATCH("/loans/:id/status", loanHandler.SetStatus)
	authRoutes.DELETE("/loans/:id", loanHandler.Delete)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validations := map[string]validator.Func{
			"entrykind":     entrydelivery.ValidEntryKind,
			"interestmodel": loandelivery.ValidInterestModel,
			"payfrequency":  loandelivery.ValidPaymentFrequency,
			"loanstatus":    loandelivery.ValidLoanStatus,
		}

		for tag, fn := range validations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				return nil, errors.New("cannot register " + tag + " validator")
			}
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
