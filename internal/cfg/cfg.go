package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http    *HTTPConfig
	Redis   *RedisCfg
	Store   *StoreCfg
	Auth    *AuthCfg
	Catalog *CatalogClientCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// StoreCfg выбирает бэкенд хранилища записей.
// Выбор делается один раз на старте процесса; при недоступном Redis
// сервис продолжает работу на локальном бэкенде.
type StoreCfg struct {
	UseRedis      bool
	ProbeAttempts int
	ProbeBackoff  time.Duration
}

type AuthCfg struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// CatalogClientCfg — параметры обращения сервиса заказов к каталогу.
type CatalogClientCfg struct {
	BaseURL string
	Timeout time.Duration
}

// LoadCatalog загружает конфигурацию сервиса каталога.
func LoadCatalog(log logger.Logger) (*Config, error) {
	const defaultPort = "8000"
	return load(log, defaultPort, false, false)
}

// LoadIdentity загружает конфигурацию сервиса пользователей.
func LoadIdentity(log logger.Logger) (*Config, error) {
	const defaultPort = "8001"
	return load(log, defaultPort, true, false)
}

// LoadOrders загружает конфигурацию сервиса заказов.
func LoadOrders(log logger.Logger) (*Config, error) {
	const defaultPort = "8002"
	return load(log, defaultPort, false, true)
}

func load(log logger.Logger, defaultPort string, withAuth, withCatalog bool) (*Config, error) {
	http, err := loadHTTPConfig(log, defaultPort)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	store, err := loadStoreCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cfg := &Config{
		Http:  http,
		Redis: redis,
		Store: store,
	}

	if withAuth {
		auth, err := loadAuthCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cfg.Auth = auth
	}

	if withCatalog {
		catalog, err := loadCatalogClientCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cfg.Catalog = catalog
	}

	return cfg, nil
}

func loadHTTPConfig(log logger.Logger, defaultPort string) (*HTTPConfig, error) {
	const (
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

func loadStoreCfg(log logger.Logger) (*StoreCfg, error) {
	const (
		defaultUseRedis      = true
		defaultProbeAttempts = 3
		defaultProbeBackoff  = 200 * time.Millisecond
	)

	useRedis, err := strconv.ParseBool(getEnvOrDefault("USE_REDIS", strconv.FormatBool(defaultUseRedis)))
	if err != nil {
		log.Errorf(err, "invalid USE_REDIS")
		return nil, err
	}

	probeAttempts, err := parseIntEnv("STORE_PROBE_ATTEMPTS", defaultProbeAttempts)
	if err != nil {
		log.Errorf(err, "invalid STORE_PROBE_ATTEMPTS")
		return nil, err
	}

	probeBackoff, err := parseDurationEnv("STORE_PROBE_BACKOFF", defaultProbeBackoff)
	if err != nil {
		log.Errorf(err, "invalid STORE_PROBE_BACKOFF")
		return nil, err
	}

	return &StoreCfg{
		UseRedis:      useRedis,
		ProbeAttempts: probeAttempts,
		ProbeBackoff:  probeBackoff,
	}, nil
}

func loadAuthCfg(log logger.Logger) (*AuthCfg, error) {
	const defaultTokenTTL = 24 * time.Hour

	secret := getEnv("JWT_SECRET")
	if secret == "" {
		err := fmt.Errorf("JWT_SECRET is required")
		log.Errorf(err, "missing JWT_SECRET")
		return nil, err
	}

	tokenTTL, err := parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		log.Errorf(err, "invalid TOKEN_TTL")
		return nil, err
	}

	return &AuthCfg{
		JWTSecret: secret,
		TokenTTL:  tokenTTL,
	}, nil
}

func loadCatalogClientCfg(log logger.Logger) (*CatalogClientCfg, error) {
	const (
		defaultBaseURL = "http://localhost:8000"
		defaultTimeout = 3 * time.Second
	)

	timeout, err := parseDurationEnv("CATALOG_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_TIMEOUT")
		return nil, err
	}

	return &CatalogClientCfg{
		BaseURL: getEnvOrDefault("CATALOG_URL", defaultBaseURL),
		Timeout: timeout,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
