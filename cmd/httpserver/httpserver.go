// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/points-wallet/internal/accountrepo"
	"github.com/go-petr/points-wallet/internal/middleware"
	"github.com/go-petr/points-wallet/internal/postingrepo"
	"github.com/go-petr/points-wallet/internal/transactionrepo"
	"github.com/go-petr/points-wallet/internal/walletdelivery"
	"github.com/go-petr/points-wallet/internal/walletservice"
	"github.com/go-petr/points-wallet/pkg/configpkg"
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
	accountRepo := accountrepo.NewRepoPGS(conn)
	postingRepo := postingrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	ctx := logger.WithContext(context.Background())

	// System accounts are static rows created at seed time, so the
	// name to id mapping is resolved once at startup.
	system, err := walletservice.ResolveSystemAccounts(ctx, accountRepo)
	if err != nil {
		return nil, err
	}

	walletService := walletservice.New(transactionRepo, accountRepo, postingRepo, system)
	walletHandler := walletdelivery.NewHandler(walletService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/health", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	wallet := engine.Group("/wallet")

	wallet.POST("/topup", walletHandler.TopUp)
	wallet.POST("/bonus", walletHandler.Bonus)
	wallet.POST("/spend", walletHandler.Spend)
	wallet.GET("/balance/:id", walletHandler.GetBalance)
	wallet.GET("/accounts", walletHandler.ListAccounts)
	wallet.GET("/transactions/:key", walletHandler.LookupTransaction)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("points", walletdelivery.ValidPoints)
		if err != nil {
			return nil, errors.New("cannot register points validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
