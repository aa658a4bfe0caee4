package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Security   SecurityConfig
	Statement  StatementConfig
	Publishing PublishingConfig
}

type ServerConfig struct {
	Port             string `validate:"required,numeric"`
	Host             string
	Environment      string `validate:"oneof=development testing staging production"`
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            string `validate:"required,numeric"`
	User            string `validate:"required"`
	Password        string
	Name            string `validate:"required"`
	SSLMode         string
	MaxConnections  int `validate:"gte=1"`
	MaxIdleConns    int `validate:"gte=0"`
	ConnMaxLifetime time.Duration
}

// JWTConfig holds the key used to verify operator tokens. Tokens are issued
// by the platform's identity service.
type JWTConfig struct {
	PublicKey *rsa.PublicKey
	Issuer    string
}

type SecurityConfig struct {
	RateLimitPerSecond int `validate:"gte=1"`
}

// StatementConfig configures the statement and balance engine.
type StatementConfig struct {
	OperationTimeout         time.Duration `validate:"gt=0"`
	GenerationSchedule       string
	BalanceSnapshotSchedule  string
	BatchSize                int `validate:"gte=1,lte=10000"`
	OnUsPaymentTypePrefix    string
	ResultPathRoot           string `validate:"required"`
	DeleteSupersededResults  bool
	ProductStatementCacheTTL time.Duration
	AuditPurgeSchedule       string
	AuditRetention           time.Duration
	DisposalSettlementLag    time.Duration `validate:"gte=0"`
}

// PublishingConfig configures where published results go. Empty values
// disable the corresponding sink.
type PublishingConfig struct {
	GCSBucket            string
	GCSCredentialsFile   string
	AMQPURL              string
	AMQPExchange         string
	NotifierFailureLimit int `validate:"gte=1"`
	NotifierResetTimeout time.Duration
}

var validate = validator.New()

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "statements_user"),
			Password:        getEnv("DB_PASSWORD", "statements_password"),
			Name:            getEnv("DB_NAME", "core_banking"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
		JWT: JWTConfig{
			Issuer: getEnv("JWT_ISSUER", "core-banking-identity"),
		},
		Statement: StatementConfig{
			OperationTimeout:         getDurationEnv("STATEMENT_OPERATION_TIMEOUT", 5*time.Second),
			GenerationSchedule:       getEnv("STATEMENT_GENERATION_SCHEDULE", "0 2 * * *"),
			BalanceSnapshotSchedule:  getEnv("BALANCE_SNAPSHOT_SCHEDULE", "30 0 * * *"),
			BatchSize:                getIntEnv("STATEMENT_BATCH_SIZE", 200),
			OnUsPaymentTypePrefix:    getEnv("ON_US_PAYMENT_TYPE_PREFIX", "ONUS"),
			ResultPathRoot:           getEnv("RESULT_PATH_ROOT", "statements"),
			DeleteSupersededResults:  getBoolEnv("STATEMENT_DELETE_SUPERSEDED_RESULTS", true),
			ProductStatementCacheTTL: getDurationEnv("PRODUCT_STATEMENT_CACHE_TTL", 10*time.Minute),
			AuditPurgeSchedule:       getEnv("AUDIT_PURGE_SCHEDULE", "0 3 * * 0"),
			AuditRetention:           getDurationEnv("AUDIT_RETENTION", 400*24*time.Hour),
			DisposalSettlementLag:    getDurationEnv("DISPOSAL_SETTLEMENT_LAG", 5*24*time.Hour),
		},
		Publishing: PublishingConfig{
			GCSBucket:            getEnv("GCS_BUCKET", ""),
			GCSCredentialsFile:   getEnv("GCS_CREDENTIALS_FILE", ""),
			AMQPURL:              getEnv("AMQP_URL", ""),
			AMQPExchange:         getEnv("AMQP_EXCHANGE", "statements"),
			NotifierFailureLimit: getIntEnv("NOTIFIER_FAILURE_LIMIT", 5),
			NotifierResetTimeout: getDurationEnv("NOTIFIER_RESET_TIMEOUT", 30*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	publicKey, err := config.loadJWTPublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT public key: %w", err)
	}
	config.JWT.PublicKey = publicKey

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks field constraints and the cron schedules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for name, schedule := range map[string]string{
		"STATEMENT_GENERATION_SCHEDULE": c.Statement.GenerationSchedule,
		"BALANCE_SNAPSHOT_SCHEDULE":     c.Statement.BalanceSnapshotSchedule,
		"AUDIT_PURGE_SCHEDULE":          c.Statement.AuditPurgeSchedule,
	} {
		if schedule == "" {
			continue
		}
		if _, err := cron.ParseStandard(schedule); err != nil {
			return fmt.Errorf("invalid configuration: %s: %w", name, err)
		}
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the DSN in URL form for lib/pq and golang-migrate.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTPublicKey loads the RSA key used to verify operator tokens.
// Outside production a missing key yields a throwaway key so the service
// starts; no token will verify against it.
func (c *Config) loadJWTPublicKey() (*rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")
	if publicKeyB64 != "" {
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
		}
		return LoadRSAPublicKey(publicKeyBytes)
	}

	if c.IsProduction() {
		return nil, errors.New("JWT_PUBLIC_KEY environment variable must be set in production environments")
	}

	slog.Warn("JWT_PUBLIC_KEY not set, generating a throwaway key; operator endpoints will reject all tokens")
	_, publicKey, err := GenerateRSAKeyPair()
	return publicKey, err
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// LoadRSAPublicKey loads an RSA public key from PEM format
func LoadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
