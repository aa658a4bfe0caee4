package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	ErrProductTypeMismatch = errors.New("account product type does not match the product statement")
	ErrAccountClosed       = errors.New("account is closed")
)

const productStatementCacheCleanup = 10 * time.Minute

type statementLifecycleService struct {
	productStatementRepo repositories.ProductStatementRepositoryInterface
	accountStatementRepo repositories.AccountStatementRepositoryInterface
	accountRepo          repositories.AccountRepositoryInterface
	eventLogger          StatementEventLoggerInterface
	templates            *cache.Cache
	timeout              time.Duration
	now                  func() time.Time
}

func NewStatementLifecycleService(
	productStatementRepo repositories.ProductStatementRepositoryInterface,
	accountStatementRepo repositories.AccountStatementRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	eventLogger StatementEventLoggerInterface,
	cacheTTL time.Duration,
	timeout time.Duration,
) StatementLifecycleServiceInterface {
	return &statementLifecycleService{
		productStatementRepo: productStatementRepo,
		accountStatementRepo: accountStatementRepo,
		accountRepo:          accountRepo,
		eventLogger:          eventLogger,
		templates:            cache.New(cacheTTL, productStatementCacheCleanup),
		timeout:              timeout,
		now:                  time.Now,
	}
}

func templateCacheKey(id uuid.UUID) string {
	return "product_statement:" + id.String()
}

// CreateProductStatement stores a new template. The template is unique per
// product, product type and statement code.
func (s *statementLifecycleService) CreateProductStatement(ctx context.Context, template *models.ProductStatement) error {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.productStatementRepo.Create(ctx, template); err != nil {
		return err
	}

	slog.Info("product statement created",
		"product_statement_id", template.ID,
		"product_id", template.ProductID,
		"statement_code", template.StatementCode)
	return nil
}

// UpdateProductStatement writes the template and drops it from the cache.
// Existing account statements keep their own recurrence and prefix.
func (s *statementLifecycleService) UpdateProductStatement(ctx context.Context, template *models.ProductStatement) error {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	err := s.productStatementRepo.Update(ctx, template)
	s.templates.Delete(templateCacheKey(template.ID))
	if err != nil {
		if errors.Is(err, repositories.ErrConcurrentModification) {
			s.eventLogger.LogOptimisticLockConflict(ctx, "product_statement", template.ID, template.Version)
		}
		return err
	}
	return nil
}

func (s *statementLifecycleService) GetProductStatement(ctx context.Context, id uuid.UUID) (*models.ProductStatement, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	key := templateCacheKey(id)
	if cached, ok := s.templates.Get(key); ok {
		template := *cached.(*models.ProductStatement)
		return &template, nil
	}

	template, err := s.productStatementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := *template
	s.templates.Set(key, &stored, cache.DefaultExpiration)
	return template, nil
}

// CreateAccountStatement opens an inactive statement for the account from a
// template. Empty overrides inherit the template's recurrence and prefix.
func (s *statementLifecycleService) CreateAccountStatement(ctx context.Context, templateID, accountID uuid.UUID, recurrence, sequencePrefix string) (*models.AccountStatement, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	template, err := s.GetProductStatement(ctx, templateID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.ProductType != template.ProductType {
		return nil, fmt.Errorf("%w: account %s is %s, template %s is %s",
			ErrProductTypeMismatch, account.ID, account.ProductType, template.StatementCode, template.ProductType)
	}

	statement := models.NewAccountStatement(template, account.ID, recurrence, sequencePrefix)
	if err := s.accountStatementRepo.Create(ctx, statement); err != nil {
		return nil, err
	}

	slog.Info("account statement created",
		"account_statement_id", statement.ID,
		"account_id", account.ID,
		"product_statement_id", template.ID,
		"recurrence", statement.Recurrence)
	return statement, nil
}

// Activate makes the statement eligible for generation. The next statement
// date is derived from the last statement date, or from today.
func (s *statementLifecycleService) Activate(ctx context.Context, statementID uuid.UUID) (*models.AccountStatement, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	statement, err := s.accountStatementRepo.GetByID(ctx, statementID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, statement.AccountID)
	if err != nil {
		return nil, err
	}
	if account.Status == models.AccountStatusClosed {
		return nil, fmt.Errorf("%w: %s", ErrAccountClosed, account.ID)
	}

	if err := statement.Activate(s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, statement); err != nil {
		return nil, err
	}

	slog.Info("account statement activated",
		"account_statement_id", statement.ID,
		"next_statement_date", formatDate(statement.NextStatementDate))
	return statement, nil
}

// Inactivate stops generation and clears the next statement date.
func (s *statementLifecycleService) Inactivate(ctx context.Context, statementID uuid.UUID) (*models.AccountStatement, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	statement, err := s.accountStatementRepo.GetByID(ctx, statementID)
	if err != nil {
		return nil, err
	}

	statement.Inactivate()
	if err := s.save(ctx, statement); err != nil {
		return nil, err
	}

	slog.Info("account statement inactivated", "account_statement_id", statement.ID)
	return statement, nil
}

func (s *statementLifecycleService) save(ctx context.Context, statement *models.AccountStatement) error {
	if err := s.accountStatementRepo.Update(ctx, statement); err != nil {
		if errors.Is(err, repositories.ErrConcurrentModification) {
			s.eventLogger.LogOptimisticLockConflict(ctx, "account_statement", statement.ID, statement.Version)
		}
		return err
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.DateLayout)
}
