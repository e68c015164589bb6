package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Wheel  WheelConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// WheelConfig groups the promotion parameters. The day-boundary timezone is a
// process-wide assumption: every instance behind the load balancer must agree
// on what "today" means.
type WheelConfig struct {
	TimeZone          string        `envconfig:"APP_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxFreePerDay     int           `envconfig:"WHEEL_MAX_FREE_PER_DAY" default:"1"`
	MaxBonusPerDay    int           `envconfig:"WHEEL_MAX_BONUS_PER_DAY" default:"1"`
	SpinRateLimit     int           `envconfig:"WHEEL_SPIN_RATE_LIMIT" default:"30"`
	ShareRateLimit    int           `envconfig:"WHEEL_SHARE_RATE_LIMIT" default:"20"`
	AdminRateLimit    int           `envconfig:"WHEEL_ADMIN_RATE_LIMIT" default:"30"`
	RateLimitInterval time.Duration `envconfig:"WHEEL_RATE_LIMIT_INTERVAL" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; deployed environments configure through the process env
	_ = godotenv.Load()

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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Ho_Chi_Minh",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Wheel: WheelConfig{
			TimeZone:          "Asia/Ho_Chi_Minh",
			MaxFreePerDay:     1,
			MaxBonusPerDay:    1,
			SpinRateLimit:     30,
			ShareRateLimit:    20,
			AdminRateLimit:    30,
			RateLimitInterval: time.Minute,
		},
	}
}
