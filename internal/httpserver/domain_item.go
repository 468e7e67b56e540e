package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-catalog/internal/item/delivery/http"
	itemRepo "item-catalog/internal/item/repository/mongodb"
	itemUC "item-catalog/internal/item/usecase"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.mongoDB, collection, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	if err := itemRepo.EnsureIndexes(ctx, srv.mongoDB, srv.itemCollection); err != nil {
		return err
	}

	// 1. Repository
	repo := itemRepo.New(srv.mongoDB, srv.itemCollection, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/items
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
