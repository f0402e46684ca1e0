package store

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func probeCfg(useRedis bool) *cfg.StoreCfg {
	return &cfg.StoreCfg{
		UseRedis:      useRedis,
		ProbeAttempts: 2,
		ProbeBackoff:  10 * time.Millisecond,
	}
}

func redisCfg(addr string) *cfg.RedisCfg {
	return &cfg.RedisCfg{
		Addr:        addr,
		DialTimeout: 100 * time.Millisecond,
		Timeout:     100 * time.Millisecond,
	}
}

func TestOpen_RedisDisabled(t *testing.T) {
	s, client := Open(context.Background(), probeCfg(false), redisCfg("localhost:6379"), testSchema(), nopLogger{})

	assert.Nil(t, client)
	assert.IsType(t, &MemoryStore{}, s)
}

func TestOpen_RedisReachable(t *testing.T) {
	mr := miniredis.RunT(t)

	s, client := Open(context.Background(), probeCfg(true), redisCfg(mr.Addr()), testSchema(), nopLogger{})
	require.NotNil(t, client)
	t.Cleanup(func() { client.Close() })

	assert.IsType(t, &RedisStore{}, s)

	// Хранилище действительно работает через Redis
	record, err := s.Create(context.Background(), Fields{"name": "via-redis"})
	require.NoError(t, err)
	assert.True(t, mr.Exists("product:"+record.ID))
}

func TestOpen_FallbackWhenRedisUnreachable(t *testing.T) {
	// Закрытый порт: подключение отклоняется сразу
	s, client := Open(context.Background(), probeCfg(true), redisCfg("127.0.0.1:1"), testSchema(), nopLogger{})

	assert.Nil(t, client)
	require.IsType(t, &MemoryStore{}, s)

	// Деградированный режим остаётся рабочим
	record, err := s.Create(context.Background(), Fields{"name": "degraded"})
	require.NoError(t, err)

	got, err := s.Get(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "degraded", got.Fields["name"])
}
