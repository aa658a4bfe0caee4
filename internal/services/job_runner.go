package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

const (
	JobBalanceSnapshot = "balance_snapshot"
	JobDueStatements   = "due_statements"
	JobAuditPurge      = "audit_purge"
)

// JobReport summarises one run of a best-effort job. Per-item failures are
// collected in Errors; the run itself still completes.
type JobReport struct {
	Job          string
	BusinessDate time.Time
	Processed    int
	Succeeded    int
	Skipped      int
	Failed       int
	Errors       *multierror.Error
}

// Err returns the aggregated item failures, or nil.
func (r *JobReport) Err() error {
	return r.Errors.ErrorOrNil()
}

func (r *JobReport) fail(err error) {
	r.Failed++
	r.Errors = multierror.Append(r.Errors, err)
}

// JobRunnerInterface runs the daily batch jobs.
type JobRunnerInterface interface {
	RunBalanceSnapshots(ctx context.Context, businessDate time.Time) (*JobReport, error)
	RunDueStatements(ctx context.Context, businessDate time.Time) (*JobReport, error)
}

// JobConfig carries the batch job settings.
type JobConfig struct {
	BatchSize        int
	DeleteSuperseded bool
}

type jobRunner struct {
	accountRepo          repositories.AccountRepositoryInterface
	accountStatementRepo repositories.AccountStatementRepositoryInterface
	balanceService       BalanceServiceInterface
	generator            StatementGeneratorInterface
	eventLogger          StatementEventLoggerInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
	config               JobConfig
}

func NewJobRunner(
	accountRepo repositories.AccountRepositoryInterface,
	accountStatementRepo repositories.AccountStatementRepositoryInterface,
	balanceService BalanceServiceInterface,
	generator StatementGeneratorInterface,
	eventLogger StatementEventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	config JobConfig,
) JobRunnerInterface {
	if config.BatchSize < 1 {
		config.BatchSize = 100
	}
	return &jobRunner{
		accountRepo:          accountRepo,
		accountStatementRepo: accountStatementRepo,
		balanceService:       balanceService,
		generator:            generator,
		eventLogger:          eventLogger,
		metrics:              metrics,
		logger:               logger,
		config:               config,
	}
}

// RunBalanceSnapshots records the balance as of businessDate for every
// account that keeps balance snapshots. Accounts are processed one by one
// and a failing account never stops the run.
func (j *jobRunner) RunBalanceSnapshots(ctx context.Context, businessDate time.Time) (*JobReport, error) {
	start := time.Now()
	report := &JobReport{Job: JobBalanceSnapshot, BusinessDate: models.DateOf(businessDate)}

	afterID := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			return j.finish(report, start, err)
		}

		accounts, err := j.accountRepo.ListBalanceCalculationEnabled(ctx, afterID, j.config.BatchSize)
		if err != nil {
			return j.finish(report, start, fmt.Errorf("failed to list accounts: %w", err))
		}

		for i := range accounts {
			account := &accounts[i]
			report.Processed++

			row, err := j.balanceService.RecordDailyBalance(ctx, account, report.BusinessDate)
			switch {
			case err != nil:
				report.fail(fmt.Errorf("account %s: %w", account.ID, err))
				j.logger.Error("daily balance snapshot failed",
					"account_id", account.ID,
					"balance_date", report.BusinessDate.Format(models.DateLayout),
					"error", err)
			case row == nil:
				report.Skipped++
			default:
				report.Succeeded++
			}
		}

		if len(accounts) < j.config.BatchSize {
			break
		}
		afterID = accounts[len(accounts)-1].ID
	}

	return j.finish(report, start, nil)
}

// statementGroup is the set of account statements generated into one result.
type statementGroup struct {
	productType   string
	statementType string
	publishType   string
	batchKey      string
	ids           []uuid.UUID
}

// RunDueStatements generates every active statement due on or before
// businessDate. Statements are grouped by product type, statement type and
// publish type, then by client for client-batched templates; every other
// statement is generated on its own. A failing group is logged and skipped.
func (j *jobRunner) RunDueStatements(ctx context.Context, businessDate time.Time) (*JobReport, error) {
	start := time.Now()
	report := &JobReport{Job: JobDueStatements, BusinessDate: models.DateOf(businessDate)}

	due, err := j.listDue(ctx, report.BusinessDate)
	if err != nil {
		return j.finish(report, start, err)
	}

	groups, err := j.groupDue(ctx, due)
	if err != nil {
		return j.finish(report, start, err)
	}

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return j.finish(report, start, err)
		}
		report.Processed += len(group.ids)

		result, err := j.generator.GenerateBatch(ctx, group.productType, group.statementType, group.publishType, group.ids, j.config.DeleteSuperseded)
		if err != nil {
			report.fail(fmt.Errorf("batch %s: %w", group.batchKey, err))
			j.logger.Error("statement batch generation failed",
				"product_type", group.productType,
				"batch_key", group.batchKey,
				"statements", len(group.ids),
				"retryable", repositories.IsRetryable(err),
				"error", err)
			continue
		}

		report.Succeeded += len(group.ids)
		j.logger.Info("statement batch generated",
			"result_id", result.ID,
			"result_code", result.ResultCode,
			"statements", len(group.ids))
	}

	return j.finish(report, start, nil)
}

func (j *jobRunner) listDue(ctx context.Context, date time.Time) ([]*models.AccountStatement, error) {
	var due []*models.AccountStatement
	afterID := uuid.Nil
	for {
		page, err := j.accountStatementRepo.ListDue(ctx, date, afterID, j.config.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list due statements: %w", err)
		}
		due = append(due, page...)
		if len(page) < j.config.BatchSize {
			return due, nil
		}
		afterID = page[len(page)-1].ID
	}
}

func (j *jobRunner) groupDue(ctx context.Context, due []*models.AccountStatement) ([]*statementGroup, error) {
	var clientBatched []uuid.UUID
	for _, s := range due {
		if s.ProductStatement != nil && s.ProductStatement.BatchType == models.BatchTypeClient {
			clientBatched = append(clientBatched, s.AccountID)
		}
	}

	accounts := map[uuid.UUID]*models.Account{}
	if len(clientBatched) > 0 {
		var err error
		if accounts, err = j.accountRepo.GetByIDs(ctx, clientBatched); err != nil {
			return nil, fmt.Errorf("failed to load accounts of due statements: %w", err)
		}
	}

	byKey := make(map[string]*statementGroup)
	for _, s := range due {
		template := s.ProductStatement
		if template == nil {
			j.eventLogger.LogBatchItemSkipped(ctx, JobDueStatements, s.ID, "product statement not loaded")
			continue
		}

		batchKey := "statement:" + s.ID.String()
		if account, ok := accounts[s.AccountID]; ok && template.BatchType == models.BatchTypeClient {
			batchKey = "client:" + account.ClientID.String()
		}

		key := template.ProductType + "|" + template.StatementType + "|" + template.PublishType + "|" + batchKey
		group, ok := byKey[key]
		if !ok {
			group = &statementGroup{
				productType:   template.ProductType,
				statementType: template.StatementType,
				publishType:   template.PublishType,
				batchKey:      batchKey,
			}
			byKey[key] = group
		}
		group.ids = append(group.ids, s.ID)
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]*statementGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, byKey[key])
	}
	return groups, nil
}

func (j *jobRunner) finish(report *JobReport, start time.Time, err error) (*JobReport, error) {
	status := "success"
	switch {
	case err != nil:
		status = "aborted"
	case report.Failed > 0:
		status = "partial"
	}

	j.metrics.IncrementCounter(MetricJobRun, map[string]string{"job": report.Job, "status": status})
	j.metrics.RecordProcessingTime(MetricJobDuration+"."+report.Job, time.Since(start))
	j.logger.Info("job run finished",
		"job", report.Job,
		"business_date", report.BusinessDate.Format(models.DateLayout),
		"status", status,
		"processed", report.Processed,
		"succeeded", report.Succeeded,
		"skipped", report.Skipped,
		"failed", report.Failed)

	return report, err
}
