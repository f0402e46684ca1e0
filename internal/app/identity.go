package app

import (
	"context"

	config "github.com/DRSN-tech/commerce-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/commerce-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/commerce-backend/internal/infrastructure/auth"
	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/closer"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RunIdentity собирает и запускает сервис пользователей.
func RunIdentity(cfg *config.Config, log logger.Logger) error {
	cl := closer.NewCloser()

	userStore, redisClient := store.Open(context.Background(), cfg.Store, cfg.Redis, records.UserSchema(), log)
	if redisClient != nil {
		cl.Add(func(context.Context) error { return redisClient.Close() })
	}

	identityUC := usecase.NewIdentityUC(
		records.NewUserRepo(userStore),
		auth.NewBcryptHasher(),
		auth.NewJWTIssuer(cfg.Auth),
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.InitIdentity(identityUC)

	return runServer(v1Http.NewServer(r, cfg.Http), cl, log, "identity")
}
