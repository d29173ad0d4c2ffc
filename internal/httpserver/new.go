package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"freezer-inventory/internal/item"
	"freezer-inventory/internal/middleware"
	"freezer-inventory/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	ready       func(ctx context.Context) error

	// Item domain
	itemUC item.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	// ReadyCheck backs /ready; nil means always ready.
	ReadyCheck func(ctx context.Context) error

	// Item domain
	ItemUseCase item.UseCase
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		ready:       cfg.ReadyCheck,
		itemUC:      cfg.ItemUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.itemUC == nil {
		return errors.New("item use case is required")
	}
	return nil
}
