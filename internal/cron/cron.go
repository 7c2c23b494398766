package cron

import (
	"log"
	"time"

	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/internal/config"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", config.AuditRetentionDays)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(config.AuditRetentionDays); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(config.AuditRetentionDays); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Println("Audit log cleanup completed successfully")
			}
		}
	}()
}
