package database

import (
	"fmt"
	"testing"
	"time"

	"core-banking-statements/internal/config"
	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"audit_logs",
	"account_statements",
	"account_statement_results",
	"product_statements",
	"daily_balances",
	"transactions",
	"account_identifiers",
	"accounts",
	"clients",
}

// SetupTestDB opens a migrated in-memory sqlite database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every connection to :memory: gets its own database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestClient(t *testing.T, db *DB, name string) *models.Client {
	t.Helper()

	client := &models.Client{
		ClientNo:    "C" + uuid.New().String()[:8],
		DisplayName: name,
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// CreateTestAccount creates an active account activated on activatedOn.
func CreateTestAccount(t *testing.T, db *DB, clientID uuid.UUID, productType string, activatedOn time.Time) *models.Account {
	t.Helper()

	activated := models.DateOf(activatedOn)
	account := &models.Account{
		AccountNo:      "A" + uuid.New().String()[:12],
		ClientID:       clientID,
		ProductID:      uuid.New(),
		ProductType:    productType,
		Status:         models.AccountStatusActive,
		AccountBalance: decimal.Zero,
		HoldAmount:     decimal.Zero,
		ActivatedOn:    &activated,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

func CreateTestTransaction(t *testing.T, db *DB, accountID uuid.UUID, txType string, amount string, submittedOn time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		AccountID:       accountID,
		TransactionType: txType,
		Amount:          decimal.RequireFromString(amount),
		SubmittedOn:     models.DateOf(submittedOn),
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

func CreateTestIdentifier(t *testing.T, db *DB, accountID uuid.UUID, identifierType, value string) *models.AccountIdentifier {
	t.Helper()

	identifier := &models.AccountIdentifier{
		AccountID:      accountID,
		IdentifierType: identifierType,
		Value:          value,
	}
	if err := db.Create(identifier).Error; err != nil {
		t.Fatalf("failed to create test identifier: %v", err)
	}
	return identifier
}

func CreateTestProductStatement(t *testing.T, db *DB, productID uuid.UUID, productType, recurrence string) *models.ProductStatement {
	t.Helper()

	template := &models.ProductStatement{
		ProductID:      productID,
		ProductType:    productType,
		StatementCode:  "STMT-" + uuid.New().String()[:6],
		Recurrence:     recurrence,
		SequencePrefix: "ST",
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test product statement: %v", err)
	}
	return template
}
