package app

import (
	"context"

	config "github.com/DRSN-tech/commerce-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/commerce-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/closer"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RunCatalog собирает и запускает сервис каталога товаров.
func RunCatalog(cfg *config.Config, log logger.Logger) error {
	cl := closer.NewCloser()

	productStore, redisClient := store.Open(context.Background(), cfg.Store, cfg.Redis, records.ProductSchema(), log)
	if redisClient != nil {
		cl.Add(func(context.Context) error { return redisClient.Close() })
	}

	catalogUC := usecase.NewCatalogUC(records.NewProductRepo(productStore), log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.InitCatalog(catalogUC)

	return runServer(v1Http.NewServer(r, cfg.Http), cl, log, "catalog")
}
