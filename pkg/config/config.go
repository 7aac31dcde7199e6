package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MERCADIA_DB_DSN"
	EnvDBHost = "MERCADIA_DB_HOST"
	EnvDBUser = "MERCADIA_DB_USER"
	EnvDBName = "MERCADIA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Report       ReportConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MERCADIA_APP_ENV" required:"true"`
	Port         string `envconfig:"MERCADIA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MERCADIA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MERCADIA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MERCADIA_DB_DSN"`
	Driver string `envconfig:"MERCADIA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MERCADIA_DB_HOST"`
	LegacyPort     int    `envconfig:"MERCADIA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MERCADIA_DB_USER"`
	LegacyPassword string `envconfig:"MERCADIA_DB_PASSWORD"`
	LegacyName     string `envconfig:"MERCADIA_DB_NAME"`
	LegacySSLMode  string `envconfig:"MERCADIA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MERCADIA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MERCADIA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MERCADIA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MERCADIA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MERCADIA_REDIS_URL"`
	Address      string        `envconfig:"MERCADIA_REDIS_ADDR"`
	Password     string        `envconfig:"MERCADIA_REDIS_PASSWORD"`
	DB           int           `envconfig:"MERCADIA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MERCADIA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MERCADIA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MERCADIA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MERCADIA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MERCADIA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis connection is configured at all. The API
// degrades to uncached public reports without one.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"MERCADIA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MERCADIA_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MERCADIA_JWT_EXPIRATION_MINUTES" default:"60"`
}

type ReportConfig struct {
	Timeout        time.Duration `envconfig:"MERCADIA_REPORT_TIMEOUT" default:"10s"`
	RecentLimit    int           `envconfig:"MERCADIA_REPORT_RECENT_LIMIT" default:"5"`
	PublicCacheTTL time.Duration `envconfig:"MERCADIA_REPORT_PUBLIC_CACHE_TTL" default:"60s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MERCADIA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MERCADIA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
