package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "freezer-inventory/internal/item/delivery/http"
	"freezer-inventory/internal/middleware"
)

// setupItemDomain registers the item parsing routes.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := itemHTTP.New(srv.l, srv.itemUC)

	// Routes: /api/v1/items/...
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
