package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// UpstreamConfig points at the collaborators this service consumes but does
// not own: the catalog source and the promotion/reservation source.
type UpstreamConfig struct {
	CatalogBaseURL   string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	PromotionBaseURL string        `envconfig:"PROMOTION_BASE_URL" required:"true"`
	HTTPTimeout      time.Duration `envconfig:"UPSTREAM_HTTP_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	// Catalog snapshot is reused without a probe mismatch check only while
	// younger than this TTL.
	CatalogTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"30s"`
	// How long an abandoned pending selection survives in the mailbox.
	PendingSelectionTTL time.Duration `envconfig:"PENDING_SELECTION_TTL" default:"1h"`
	// Advisory: the promotion backend self-expires unconfirmed reservations
	// after this long. The client never relies on a reservation outliving it.
	ReservationTTL time.Duration `envconfig:"RESERVATION_TTL" default:"10m"`
	LoginURL       string        `envconfig:"LOGIN_URL" default:"/login"`
	DashboardURL   string        `envconfig:"DASHBOARD_URL" default:"/dashboard"`
	PaymentURL     string        `envconfig:"PAYMENT_URL" default:"/payment"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Upstream: UpstreamConfig{
			CatalogBaseURL:   "http://localhost:9001",
			PromotionBaseURL: "http://localhost:9002",
			HTTPTimeout:      2 * time.Second,
		},
		Checkout: CheckoutConfig{
			CatalogTTL:          30 * time.Second,
			PendingSelectionTTL: time.Hour,
			ReservationTTL:      10 * time.Minute,
			LoginURL:            "/login",
			DashboardURL:        "/dashboard",
			PaymentURL:          "/payment",
		},
	}
}
