package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Statement.OperationTimeout)
	assert.Equal(t, 200, cfg.Statement.BatchSize)
	assert.Equal(t, "ONUS", cfg.Statement.OnUsPaymentTypePrefix)
	assert.True(t, cfg.Statement.DeleteSupersededResults)
	assert.Equal(t, "0 3 * * 0", cfg.Statement.AuditPurgeSchedule)
	assert.Equal(t, 400*24*time.Hour, cfg.Statement.AuditRetention)
	assert.Equal(t, 5*24*time.Hour, cfg.Statement.DisposalSettlementLag)
	assert.Empty(t, cfg.Publishing.GCSBucket)
	assert.NotNil(t, cfg.JWT.PublicKey)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsTesting())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("STATEMENT_OPERATION_TIMEOUT", "2s")
	t.Setenv("STATEMENT_BATCH_SIZE", "50")
	t.Setenv("STATEMENT_GENERATION_SCHEDULE", "15 3 * * 1-5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://ops.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Statement.OperationTimeout)
	assert.Equal(t, 50, cfg.Statement.BatchSize)
	assert.Equal(t, "15 3 * * 1-5", cfg.Statement.GenerationSchedule)
	assert.Equal(t, []string{"https://ops.example.com", "https://admin.example.com"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidSchedule(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("BALANCE_SNAPSHOT_SCHEDULE", "whenever")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BALANCE_SNAPSHOT_SCHEDULE")
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("STATEMENT_BATCH_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BatchSize")
}

func TestLoad_ProductionRequiresPublicKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PUBLIC_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_PUBLIC_KEY")
}

func TestLoad_PublicKeyFromEnv(t *testing.T) {
	_, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PUBLIC_KEY", encoded)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, publicKey.N, cfg.JWT.PublicKey.N)
}

func TestDatabaseConfig_URL(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", db.URL())
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
}
