package cron

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/internal/config"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/internal/repository/mock"
)

func TestStartCleanupTask_RunsInitialCleanupWithConfiguredRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	old := config.AuditRetentionDays
	config.AuditRetentionDays = 90
	defer func() { config.AuditRetentionDays = old }()

	done := make(chan struct{})
	mockAudit := mock.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().DeleteOldAuditLogs(90).DoAndReturn(func(int) error {
		close(done)
		return nil
	})

	repos := &repository.Repos{Audit: mockAudit}
	StartCleanupTask(application.NewAuditService(repos))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup task did not run on startup")
	}
}
