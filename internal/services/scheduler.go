package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerConfig holds the cron expressions of the batch jobs. An empty
// expression leaves the job unscheduled.
type SchedulerConfig struct {
	BalanceSnapshotSchedule string
	GenerationSchedule      string
	AuditPurgeSchedule      string
	AuditRetention          time.Duration
	// RunTimeout bounds one job run.
	RunTimeout time.Duration
}

// Scheduler runs the balance snapshot and due statement jobs on cron.
type Scheduler struct {
	cron   *cron.Cron
	jobs   JobRunnerInterface
	audit  AuditServiceInterface
	logger *slog.Logger
	config SchedulerConfig
	now    func() time.Time
}

func NewScheduler(jobs JobRunnerInterface, logger *slog.Logger, config SchedulerConfig) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		cron:   c,
		jobs:   jobs,
		logger: logger,
		config: config,
		now:    time.Now,
	}
}

// Start registers the jobs and starts the cron scheduler. An invalid
// expression is returned before anything runs.
func (s *Scheduler) Start() error {
	if err := s.add(JobBalanceSnapshot, s.config.BalanceSnapshotSchedule, s.snapshotYesterday); err != nil {
		return err
	}
	if err := s.add(JobDueStatements, s.config.GenerationSchedule, s.generateDue); err != nil {
		return err
	}
	if s.audit != nil {
		if err := s.add(JobAuditPurge, s.config.AuditPurgeSchedule, s.purgeAudit); err != nil {
			return err
		}
	}
	s.cron.Start()
	return nil
}

// WithAuditPurge schedules the audit trail retention job. Call before Start.
func (s *Scheduler) WithAuditPurge(audit AuditServiceInterface) *Scheduler {
	s.audit = audit
	return s
}

// Stop stops scheduling; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) add(job, schedule string, fn func()) error {
	if schedule == "" {
		s.logger.Info("job not scheduled", "job", job)
		return nil
	}
	if _, err := s.cron.AddFunc(schedule, fn); err != nil {
		return fmt.Errorf("failed to schedule %s job: %w", job, err)
	}
	s.logger.Info("scheduled job", "job", job, "schedule", schedule)
	return nil
}

// snapshotYesterday closes the previous business day.
func (s *Scheduler) snapshotYesterday() {
	ctx, cancel := s.runContext()
	defer cancel()

	if _, err := s.jobs.RunBalanceSnapshots(ctx, s.now().UTC().AddDate(0, 0, -1)); err != nil {
		s.logger.Error("balance snapshot job aborted", "error", err)
	}
}

func (s *Scheduler) generateDue() {
	ctx, cancel := s.runContext()
	defer cancel()

	if _, err := s.jobs.RunDueStatements(ctx, s.now().UTC()); err != nil {
		s.logger.Error("due statement job aborted", "error", err)
	}
}

func (s *Scheduler) purgeAudit() {
	ctx, cancel := s.runContext()
	defer cancel()

	if _, err := s.audit.Purge(ctx, s.config.AuditRetention); err != nil {
		s.logger.Error("audit purge job failed", "error", err)
	}
}

func (s *Scheduler) runContext() (context.Context, context.CancelFunc) {
	ctx := WithCorrelationID(context.Background(), "cron-"+s.now().UTC().Format("20060102T150405"))
	if s.config.RunTimeout > 0 {
		return context.WithTimeout(ctx, s.config.RunTimeout)
	}
	return context.WithCancel(ctx)
}
