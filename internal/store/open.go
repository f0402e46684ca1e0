package store

import (
	"context"
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/DRSN-tech/commerce-backend/pkg/clients"
	"github.com/DRSN-tech/commerce-backend/pkg/jitter"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

// Open выбирает бэкенд хранилища один раз на старте процесса.
// При выбранном Redis выполняется проба соединения с небольшим числом
// повторов; если Redis так и не ответил, сервис продолжает работу
// на локальном бэкенде с пониженной надёжностью, а не падает.
// Возвращает хранилище и Redis-клиент для закрытия (nil для локального бэкенда).
func Open(ctx context.Context, storeCfg *cfg.StoreCfg, redisCfg *cfg.RedisCfg,
	schema Schema, log logger.Logger) (Store, *clients.RedisClient) {
	if !storeCfg.UseRedis {
		log.Infof("store backend for %q: memory (redis disabled)", schema.Kind)
		return NewMemoryStore(schema), nil
	}

	client := clients.NewRedisClient(redisCfg)
	if err := probe(ctx, client, storeCfg); err != nil {
		log.Warnf("redis unreachable, falling back to memory store for %q: %v", schema.Kind, err)
		if closeErr := client.Close(); closeErr != nil {
			log.Warnf("redis close error: %v", closeErr)
		}
		return NewMemoryStore(schema), nil
	}

	log.Infof("store backend for %q: redis at %s", schema.Kind, redisCfg.Addr)
	return NewRedisStore(client, schema), client
}

// probe пингует Redis с экспоненциальным отступлением и джиттером.
// Это единственное место с повторами: дальше по коду ошибки
// сообщаются вызывающему без ретраев.
func probe(ctx context.Context, client *clients.RedisClient, storeCfg *cfg.StoreCfg) error {
	const maxBackoff = 2 * time.Second

	var err error
	for attempt := 0; attempt < storeCfg.ProbeAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(jitter.ExponentialBackoff(storeCfg.ProbeBackoff, maxBackoff, attempt-1, jitter.DefaultJitter)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err = client.Ping(ctx); err == nil {
			return nil
		}
	}

	return err
}
