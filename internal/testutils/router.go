package testutils

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onboardhq/onboard-go/internal/api/routes"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r
}
