package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories/repository_mocks"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type JobRunnerSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	accountRepo          *repository_mocks.MockAccountRepositoryInterface
	accountStatementRepo *repository_mocks.MockAccountStatementRepositoryInterface
	balanceService       *service_mocks.MockBalanceServiceInterface
	generator            *service_mocks.MockStatementGeneratorInterface
	eventLogger          *service_mocks.MockStatementEventLoggerInterface
	metrics              *service_mocks.MockMetricsRecorderInterface
	runner               JobRunnerInterface
	ctx                  context.Context
}

func (s *JobRunnerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.accountStatementRepo = repository_mocks.NewMockAccountStatementRepositoryInterface(s.ctrl)
	s.balanceService = service_mocks.NewMockBalanceServiceInterface(s.ctrl)
	s.generator = service_mocks.NewMockStatementGeneratorInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockStatementEventLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.runner = NewJobRunner(s.accountRepo, s.accountStatementRepo, s.balanceService, s.generator,
		s.eventLogger, s.metrics, slog.Default(), JobConfig{BatchSize: 2, DeleteSuperseded: true})
	s.ctx = context.Background()
}

func (s *JobRunnerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestJobRunnerSuite(t *testing.T) {
	suite.Run(t, new(JobRunnerSuite))
}

func (s *JobRunnerSuite) expectRun(job, status string) {
	s.metrics.EXPECT().IncrementCounter(MetricJobRun, map[string]string{"job": job, "status": status})
	s.metrics.EXPECT().RecordProcessingTime(MetricJobDuration+"."+job, gomock.Any())
}

func (s *JobRunnerSuite) TestRunBalanceSnapshots_PagesAndContinuesPastFailures() {
	first := models.Account{ID: uuid.New(), Status: models.AccountStatusActive}
	second := models.Account{ID: uuid.New(), Status: models.AccountStatusActive}
	third := models.Account{ID: uuid.New(), Status: models.AccountStatusDormant}
	businessDate := jan(31)

	gomock.InOrder(
		s.accountRepo.EXPECT().ListBalanceCalculationEnabled(gomock.Any(), uuid.Nil, 2).Return([]models.Account{first, second}, nil),
		s.accountRepo.EXPECT().ListBalanceCalculationEnabled(gomock.Any(), second.ID, 2).Return([]models.Account{third}, nil),
	)
	s.balanceService.EXPECT().RecordDailyBalance(gomock.Any(), gomock.Any(), businessDate).
		DoAndReturn(func(ctx context.Context, account *models.Account, asOf time.Time) (*models.DailyBalance, error) {
			switch account.ID {
			case first.ID:
				return &models.DailyBalance{AccountID: account.ID, BalanceDate: asOf}, nil
			case second.ID:
				return nil, nil
			default:
				return nil, errors.New("ledger unavailable")
			}
		}).Times(3)
	s.expectRun(JobBalanceSnapshot, "partial")

	report, err := s.runner.RunBalanceSnapshots(s.ctx, time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC))

	s.Require().NoError(err)
	s.Equal(3, report.Processed)
	s.Equal(1, report.Succeeded)
	s.Equal(1, report.Skipped)
	s.Equal(1, report.Failed)
	s.Require().Error(report.Err())
	s.Contains(report.Err().Error(), third.ID.String())
}

func (s *JobRunnerSuite) TestRunBalanceSnapshots_ListFailureAborts() {
	s.accountRepo.EXPECT().ListBalanceCalculationEnabled(gomock.Any(), uuid.Nil, 2).Return(nil, errors.New("db down"))
	s.expectRun(JobBalanceSnapshot, "aborted")

	report, err := s.runner.RunBalanceSnapshots(s.ctx, jan(31))

	s.ErrorContains(err, "db down")
	s.Equal(0, report.Processed)
	s.NoError(report.Err())
}

func (s *JobRunnerSuite) TestRunDueStatements_GroupsByClientAndTemplate() {
	clientID := uuid.New()
	clientTemplate := &models.ProductStatement{ID: uuid.New(), ProductType: models.ProductTypeCurrent,
		StatementType: models.StatementTypeCAMT053, PublishType: models.PublishTypeDistribute, BatchType: models.BatchTypeClient}
	singleTemplate := &models.ProductStatement{ID: uuid.New(), ProductType: models.ProductTypeSavings,
		StatementType: models.StatementTypeCAMT053, PublishType: models.PublishTypeDownload, BatchType: models.BatchTypeSingle}

	a1 := &models.Account{ID: uuid.New(), ClientID: clientID}
	a2 := &models.Account{ID: uuid.New(), ClientID: clientID}
	s1 := &models.AccountStatement{ID: uuid.New(), AccountID: a1.ID, ProductStatement: clientTemplate}
	s2 := &models.AccountStatement{ID: uuid.New(), AccountID: a2.ID, ProductStatement: clientTemplate}
	s3 := &models.AccountStatement{ID: uuid.New(), AccountID: uuid.New(), ProductStatement: singleTemplate}
	orphan := &models.AccountStatement{ID: uuid.New(), AccountID: uuid.New()}

	gomock.InOrder(
		s.accountStatementRepo.EXPECT().ListDue(gomock.Any(), jan(31), uuid.Nil, 2).Return([]*models.AccountStatement{s1, s2}, nil),
		s.accountStatementRepo.EXPECT().ListDue(gomock.Any(), jan(31), s2.ID, 2).Return([]*models.AccountStatement{s3, orphan}, nil),
		s.accountStatementRepo.EXPECT().ListDue(gomock.Any(), jan(31), orphan.ID, 2).Return(nil, nil),
	)
	s.accountRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{a1.ID, a2.ID}).
		Return(map[uuid.UUID]*models.Account{a1.ID: a1, a2.ID: a2}, nil)
	s.eventLogger.EXPECT().LogBatchItemSkipped(gomock.Any(), JobDueStatements, orphan.ID, gomock.Any())

	s.generator.EXPECT().GenerateBatch(gomock.Any(), models.ProductTypeCurrent, models.StatementTypeCAMT053,
		models.PublishTypeDistribute, []uuid.UUID{s1.ID, s2.ID}, true).
		Return(&models.AccountStatementResult{ID: uuid.New(), ResultCode: "CUR-1"}, nil)
	s.generator.EXPECT().GenerateBatch(gomock.Any(), models.ProductTypeSavings, models.StatementTypeCAMT053,
		models.PublishTypeDownload, []uuid.UUID{s3.ID}, true).
		Return(nil, models.ErrInvalidStatementStatus)
	s.expectRun(JobDueStatements, "partial")

	report, err := s.runner.RunDueStatements(s.ctx, jan(31))

	s.Require().NoError(err)
	s.Equal(3, report.Processed)
	s.Equal(2, report.Succeeded)
	s.Equal(1, report.Failed)
	s.ErrorIs(report.Err(), models.ErrInvalidStatementStatus)
}

func (s *JobRunnerSuite) TestRunDueStatements_NothingDue() {
	s.accountStatementRepo.EXPECT().ListDue(gomock.Any(), jan(31), uuid.Nil, 2).Return(nil, nil)
	s.expectRun(JobDueStatements, "success")

	report, err := s.runner.RunDueStatements(s.ctx, jan(31))

	s.NoError(err)
	s.Equal(0, report.Processed)
}

type recordingJobRunner struct {
	mu        sync.Mutex
	snapshots []time.Time
	due       []time.Time
	deadlines []bool
}

func (r *recordingJobRunner) RunBalanceSnapshots(ctx context.Context, businessDate time.Time) (*JobReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := ctx.Deadline()
	r.snapshots = append(r.snapshots, businessDate)
	r.deadlines = append(r.deadlines, ok)
	return &JobReport{Job: JobBalanceSnapshot}, nil
}

func (r *recordingJobRunner) RunDueStatements(ctx context.Context, businessDate time.Time) (*JobReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.due = append(r.due, businessDate)
	return &JobReport{Job: JobDueStatements}, nil
}

func TestScheduler_JobsUseBusinessDates(t *testing.T) {
	jobs := &recordingJobRunner{}
	scheduler := NewScheduler(jobs, slog.Default(), SchedulerConfig{RunTimeout: time.Minute})
	scheduler.now = func() time.Time { return time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC) }

	scheduler.snapshotYesterday()
	scheduler.generateDue()

	require.Len(t, jobs.snapshots, 1)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 30, 0, 0, time.UTC), jobs.snapshots[0])
	assert.True(t, jobs.deadlines[0])
	require.Len(t, jobs.due, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC), jobs.due[0])
}

func TestScheduler_StartRejectsInvalidSchedule(t *testing.T) {
	scheduler := NewScheduler(&recordingJobRunner{}, slog.Default(), SchedulerConfig{
		BalanceSnapshotSchedule: "not a cron expression",
	})

	assert.Error(t, scheduler.Start())
}

func TestScheduler_StartAndStop(t *testing.T) {
	scheduler := NewScheduler(&recordingJobRunner{}, slog.Default(), SchedulerConfig{
		BalanceSnapshotSchedule: "30 0 * * *",
		GenerationSchedule:      "0 2 * * *",
	})

	require.NoError(t, scheduler.Start())
	assert.Len(t, scheduler.cron.Entries(), 2)

	select {
	case <-scheduler.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_AuditPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)

	scheduler := NewScheduler(&recordingJobRunner{}, slog.Default(), SchedulerConfig{
		AuditPurgeSchedule: "0 3 * * 0",
		AuditRetention:     30 * 24 * time.Hour,
	}).WithAuditPurge(audit)

	audit.EXPECT().Purge(gomock.Any(), 30*24*time.Hour).Return(int64(3), nil)
	scheduler.purgeAudit()

	require.NoError(t, scheduler.Start())
	assert.Len(t, scheduler.cron.Entries(), 1)
	<-scheduler.Stop().Done()
}
