// Package config предоставляет структуру конфигурации и функции её загрузки.
//
// Источники в порядке приоритета: переменные окружения (в том числе из .env),
// затем YAML-файл из CONFIG_PATH, затем значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Debug      bool       `yaml:"debug" env:"DEBUG" env-default:"false"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	GRPCServer GRPCServer `yaml:"grpc_server"`
	Auth       Auth       `yaml:"auth"`
	RabbitMQ   RabbitMQ   `yaml:"rabbitmq"`
	Redis      Redis      `yaml:"redis"`
	SMTP       SMTP       `yaml:"smtp"`
}

// Database содержит параметры подключения к PostgreSQL.
type Database struct {
	Host         string        `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         int           `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name         string        `yaml:"name" env:"DB_NAME" env-default:"trading"`
	User         string        `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password     string        `yaml:"password" env:"DB_PASS"`
	SSLMode      string        `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	ConnMaxIdle  time.Duration `yaml:"conn_max_idle" env:"DB_CONN_MAX_IDLE" env-default:"5m"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8000"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// GRPCServer — адрес gRPC health-сервиса. Пустой адрес отключает сервис.
type GRPCServer struct {
	Address string `yaml:"address" env:"GRPC_HEALTH_ADDRESS"`
}

// Auth хранит секреты и параметры токенов и cookie.
type Auth struct {
	JWTSecret          string        `yaml:"jwt_secret" env:"SECRET_JWT" env-required:"true"`
	ResetSecret        string        `yaml:"reset_secret" env:"SECRET_MANAGER_RESET" env-required:"true"`
	VerificationSecret string        `yaml:"verification_secret" env:"SECRET_MANAGER_VERIFICATION" env-required:"true"`
	TokenTTL           time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	ResetTokenTTL      time.Duration `yaml:"reset_token_ttl" env:"RESET_TOKEN_TTL" env-default:"1h"`
	VerifyTokenTTL     time.Duration `yaml:"verify_token_ttl" env:"VERIFY_TOKEN_TTL" env-default:"1h"`
	CookieName         string        `yaml:"cookie_name" env:"COOKIE_NAME" env-default:"auth_cookie"`
	CookieDomain       string        `yaml:"cookie_domain" env:"COOKIE_DOMAIN"`
	CookieSecure       bool          `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"true"`
	CookieSameSite     string        `yaml:"cookie_samesite" env:"COOKIE_SAMESITE" env-default:"lax"`
	RateLimitRPS       float64       `yaml:"rate_limit_rps" env:"AUTH_RATE_LIMIT_RPS" env-default:"5"`
	RateLimitBurst     int           `yaml:"rate_limit_burst" env:"AUTH_RATE_LIMIT_BURST" env-default:"10"`
}

// RabbitMQ — брокер для событий жизненного цикла пользователя. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"users.events"`
	MaxRetries int           `yaml:"max_retries" env:"RABBITMQ_MAX_RETRIES" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"2s"`
}

// Redis — канал pub/sub для событий жизненного цикла. Пустой адрес отключает публикацию.
type Redis struct {
	Address     string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Channel     string        `yaml:"channel" env:"REDIS_CHANNEL" env-default:"users.events"`
	MaxRetries  int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"3s"`
}

// SMTP описывает почтовый сервер для писем со ссылками сброса пароля и верификации.
// Пустой хост отключает отправку.
type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	From     string `yaml:"from" env:"SMTP_FROM"`
	StartTLS bool   `yaml:"starttls" env:"SMTP_STARTTLS" env-default:"true"`
}

// ConnectionString собирает DSN PostgreSQL для драйвера pgx.
func (d Database) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Load читает конфигурацию. .env подхватывается, если файл существует.
func Load() (*Config, error) {
	const op = "config.Load"
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%s: config file %s: %w", op, configPath, err)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфигурацию и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Debug: %t\n"+
			"Database: %s:%d/%s (user %s)\n"+
			"HTTPServer: %s timeout=%s idle=%s\n"+
			"GRPCServer: %q\n"+
			"Auth: token_ttl=%s cookie=%s secure=%t secrets=%s\n"+
			"RabbitMQ: enabled=%t exchange=%s\n"+
			"Redis: enabled=%t channel=%s\n"+
			"SMTP: enabled=%t host=%s:%d\n",
		c.Env,
		c.Debug,
		c.Database.Host, c.Database.Port, c.Database.Name, c.Database.User,
		c.HTTPServer.Address, c.HTTPServer.Timeout, c.HTTPServer.IdleTimeout,
		c.GRPCServer.Address,
		c.Auth.TokenTTL, c.Auth.CookieName, c.Auth.CookieSecure, "***",
		c.RabbitMQ.URL != "", c.RabbitMQ.Exchange,
		c.Redis.Address != "", c.Redis.Channel,
		c.SMTP.Host != "", c.SMTP.Host, c.SMTP.Port,
	)
}
