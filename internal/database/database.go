package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"core-banking-statements/internal/config"
	"core-banking-statements/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Client{},
		&models.Account{},
		&models.AccountIdentifier{},
		&models.Transaction{},
		&models.DailyBalance{},
		&models.ProductStatement{},
		&models.AccountStatementResult{},
		&models.AccountStatement{},
		&models.AuditLog{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the partial indexes AutoMigrate cannot express.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_account_statements_due ON account_statements(next_statement_date) WHERE statement_status = 'ACTIVE'",
		"CREATE INDEX IF NOT EXISTS idx_account_statement_results_unpublished ON account_statement_results(id) WHERE result_status = 'GENERATED'",
		"CREATE INDEX IF NOT EXISTS idx_transactions_pending ON transactions(account_id) WHERE pending_settlement",
		"CREATE INDEX IF NOT EXISTS idx_accounts_balance_enabled ON accounts(status) WHERE status IN ('active', 'blocked', 'dormant')",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection. Schema changes
// go through golang-migrate over a separate lib/pq connection; AutoMigrate is
// the fallback when the runner fails.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrationDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer migrationDB.Close()

	if err := RunMigrationsIfEnabled(migrationDB); err != nil {
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized")

	return db.DB, nil
}
