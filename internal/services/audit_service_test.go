package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuditServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockAuditLogRepositoryInterface
	service *AuditService
	ctx     context.Context
	now     time.Time
}

func (s *AuditServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.repo, slog.Default(), time.Second).(*AuditService)
	s.now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
	s.ctx = WithCorrelationID(context.Background(), "trace-42")
}

func (s *AuditServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceSuite))
}

func (s *AuditServiceSuite) validLog() *models.AuditLog {
	return &models.AuditLog{
		Operator:   "ops-1",
		Action:     models.AuditActionResultPublished,
		Resource:   models.AuditResourceStatementResult,
		ResourceID: "res-1",
	}
}

func (s *AuditServiceSuite) TestRecord_FillsTraceAndTime() {
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, log *models.AuditLog) error {
			_, ok := ctx.Deadline()
			s.True(ok)
			s.Equal("trace-42", log.TraceID)
			s.Equal(s.now, log.CreatedAt)
			return nil
		})

	s.NoError(s.service.Record(s.ctx, s.validLog()))
}

func (s *AuditServiceSuite) TestRecord_KeepsExplicitTrace() {
	log := s.validLog()
	log.TraceID = "from-request"

	s.repo.EXPECT().Create(gomock.Any(), log).Return(nil)

	s.NoError(s.service.Record(s.ctx, log))
	s.Equal("from-request", log.TraceID)
}

func (s *AuditServiceSuite) TestRecord_Invalid() {
	tests := []struct {
		name string
		log  *models.AuditLog
		want error
	}{
		{"nil", nil, ErrInvalidAuditLog},
		{"missing operator", &models.AuditLog{Action: models.AuditActionAccountClosed, Resource: models.AuditResourceAccount}, ErrInvalidAuditLog},
		{"missing resource", &models.AuditLog{Operator: "ops-1", Action: models.AuditActionAccountClosed}, ErrInvalidAuditLog},
		{"unknown action", &models.AuditLog{Operator: "ops-1", Action: "login", Resource: models.AuditResourceAccount}, ErrUnknownAuditAction},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.ErrorIs(s.service.Record(s.ctx, tt.log), tt.want)
		})
	}
}

func (s *AuditServiceSuite) TestRecord_RepositoryError() {
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := s.service.Record(s.ctx, s.validLog())
	s.ErrorContains(err, "failed to record audit log")
}

func (s *AuditServiceSuite) TestList() {
	filter := models.AuditLogFilter{Operator: "ops-1", Limit: 10}
	logs := []*models.AuditLog{s.validLog()}

	s.repo.EXPECT().List(gomock.Any(), filter).Return(logs, int64(1), nil)

	got, total, err := s.service.List(s.ctx, filter)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(logs, got)
}

func (s *AuditServiceSuite) TestList_InvalidRange() {
	from := s.now
	to := s.now.Add(-time.Hour)

	_, _, err := s.service.List(s.ctx, models.AuditLogFilter{From: &from, To: &to})
	s.ErrorIs(err, ErrAuditDateRange)
}

func (s *AuditServiceSuite) TestList_UnknownAction() {
	_, _, err := s.service.List(s.ctx, models.AuditLogFilter{Action: "password_reset"})
	s.ErrorIs(err, ErrUnknownAuditAction)
}

func (s *AuditServiceSuite) TestPurge() {
	s.repo.EXPECT().DeleteOlderThan(gomock.Any(), s.now.Add(-90*24*time.Hour)).Return(int64(7), nil)

	deleted, err := s.service.Purge(s.ctx, 90*24*time.Hour)
	s.NoError(err)
	s.Equal(int64(7), deleted)
}

func (s *AuditServiceSuite) TestPurge_DisabledRetention() {
	deleted, err := s.service.Purge(s.ctx, 0)
	s.NoError(err)
	s.Zero(deleted)
}

func (s *AuditServiceSuite) TestPurge_Error() {
	s.repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))

	_, err := s.service.Purge(s.ctx, time.Hour)
	s.Error(err)
}
