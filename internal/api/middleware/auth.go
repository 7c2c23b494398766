package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/onboardhq/onboard-go/internal/config"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/pkg/response"
	"github.com/onboardhq/onboard-go/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

func hasHRRole(role string) bool {
	for _, r := range config.HRRoles {
		if role == r {
			return true
		}
	}
	return false
}

// HR allows only reviewers (hr or admin role).
func (a *Auth) HR() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		if !hasHRRole(claims.Role) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Reviewer role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SelfEmployeeOrHR allows HR on any employee, and an employee only on its
// own profile (matched via the :id route parameter).
func (a *Auth) SelfEmployeeOrHR() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		if hasHRRole(claims.Role) {
			c.Next()
			return
		}

		employeeID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing employee id"})
			c.Abort()
			return
		}

		emp, err := a.repos.Employee.GetByUserID(claims.UserID)
		if err != nil || emp.EID != employeeID {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoggingMiddleware logs requests (placeholder; hook for real logging)
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	return cors.New(cfg)
}
