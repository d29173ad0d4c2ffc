package http

import (
	"github.com/gin-gonic/gin"

	"freezer-inventory/internal/item"
	"freezer-inventory/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	ParseBatch(c *gin.Context)
	Categories(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
