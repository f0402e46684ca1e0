package app

import (
	"context"

	config "github.com/DRSN-tech/commerce-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/commerce-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/commerce-backend/internal/infrastructure/catalog"
	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/closer"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RunOrders собирает и запускает сервис заказов.
func RunOrders(cfg *config.Config, log logger.Logger) error {
	cl := closer.NewCloser()

	orderStore, redisClient := store.Open(context.Background(), cfg.Store, cfg.Redis, records.OrderSchema(), log)
	if redisClient != nil {
		cl.Add(func(context.Context) error { return redisClient.Close() })
	}

	orderUC := usecase.NewOrderUC(
		records.NewOrderRepo(orderStore),
		catalog.NewClient(cfg.Catalog, log),
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.InitOrders(orderUC)

	return runServer(v1Http.NewServer(r, cfg.Http), cl, log, "orders")
}
