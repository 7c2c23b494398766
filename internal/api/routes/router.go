package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/onboardhq/onboard-go/docs"
	"github.com/onboardhq/onboard-go/internal/api/handlers"
	"github.com/onboardhq/onboard-go/internal/api/middleware"
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/internal/cron"
	"github.com/onboardhq/onboard-go/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// init
	repos_instance := repository.NewRepositories(db)
	services_instance := application.New(repos_instance)
	handlers_instance := handlers.New(services_instance, repos_instance)
	authMiddleware := middleware.NewAuth(repos_instance)

	cron.StartCleanupTask(services_instance.Audit)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", handlers_instance.User.GetMe)
		auth.PUT("/users/:id", handlers_instance.User.UpdateUser)

		auth.GET("/ws/onboarding/:id", authMiddleware.SelfEmployeeOrHR(), handlers_instance.Onboarding.Watch)

		forms := auth.Group("/forms")
		{
			forms.GET("", handlers_instance.Submission.ListForms)
			forms.GET("/:type", handlers_instance.Submission.GetFormStatus)
			forms.PUT("/:type", handlers_instance.Submission.SaveForm)
		}

		employees := auth.Group("/employees")
		{
			employees.GET("", authMiddleware.HR(), handlers_instance.Employee.ListEmployees)
			employees.POST("", authMiddleware.HR(), handlers_instance.Employee.CreateEmployee)
			employees.GET("/:id", authMiddleware.SelfEmployeeOrHR(), handlers_instance.Employee.GetEmployeeByID)
			employees.PUT("/:id", authMiddleware.HR(), handlers_instance.Employee.UpdateEmployee)

			employees.GET("/:id/stage", authMiddleware.SelfEmployeeOrHR(), handlers_instance.Employee.GetStage)
			employees.PUT("/:id/stage", authMiddleware.HR(), handlers_instance.Employee.SetStage)
			employees.POST("/:id/reevaluate", authMiddleware.HR(), handlers_instance.Employee.Reevaluate)

			employees.GET("/:id/forms", authMiddleware.HR(), handlers_instance.Submission.ListEmployeeForms)
			employees.GET("/:id/forms/:type", authMiddleware.HR(), handlers_instance.Submission.GetEmployeeForm)
			employees.PUT("/:id/forms/:type/verify", authMiddleware.HR(), handlers_instance.Submission.VerifyForm)
			employees.PUT("/:id/forms/:type/disable", authMiddleware.HR(), handlers_instance.Employee.SetFormDisabled)

			employees.POST("/:id/documents", authMiddleware.SelfEmployeeOrHR(), handlers_instance.Document.Upload)
			employees.GET("/:id/documents", authMiddleware.SelfEmployeeOrHR(), handlers_instance.Document.List)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("/:id/download", handlers_instance.Document.Download)
			documents.DELETE("/:id", authMiddleware.HR(), handlers_instance.Document.Delete)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.HR(), handlers_instance.Audit.GetAuditLogs)
		}
	}
}
