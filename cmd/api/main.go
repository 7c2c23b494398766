package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/onboardhq/onboard-go/internal/api/middleware"
	"github.com/onboardhq/onboard-go/internal/api/routes"
	"github.com/onboardhq/onboard-go/internal/config"
	"github.com/onboardhq/onboard-go/internal/config/db"
	"github.com/onboardhq/onboard-go/internal/domain/audit"
	"github.com/onboardhq/onboard-go/internal/domain/document"
	"github.com/onboardhq/onboard-go/internal/domain/employee"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/domain/user"
	"github.com/onboardhq/onboard-go/internal/storage/minio"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Initialize object storage for employee documents
	minio.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&employee.Employee{},
		&submission.FormSubmission{},
		&document.Document{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
