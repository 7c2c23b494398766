//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboardhq/onboard-go/pkg/response"
)

func TestEmployeeHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	hrClient := NewHTTPClient(ctx.Router, ctx.HRToken)

	var newHireUID uint
	var newHireEID uint

	t.Run("Register and Login", func(t *testing.T) {
		anon := NewHTTPClient(ctx.Router, "")

		resp, err := anon.POST("/register", map[string]interface{}{
			"username": "new-hire",
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		loginResp, err := anon.POST("/login", map[string]interface{}{
			"username": "new-hire",
			"password": "password123",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, loginResp.StatusCode)

		var token response.TokenResponse
		require.NoError(t, loginResp.DecodeJSON(&token))
		assert.NotEmpty(t, token.Token)
		assert.Equal(t, "employee", token.Role)
		newHireUID = token.UID
	})

	t.Run("Login - Wrong Password", func(t *testing.T) {
		anon := NewHTTPClient(ctx.Router, "")
		resp, err := anon.POST("/login", map[string]interface{}{
			"username": "new-hire",
			"password": "nope",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("CreateEmployee - HR Only", func(t *testing.T) {
		empClient := NewHTTPClient(ctx.Router, ctx.EmployeeToken)
		resp, err := empClient.POST("/employees", map[string]interface{}{
			"user_id":       ctx.TestUser.UID,
			"employee_code": "EMP-X",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("CreateEmployee - Success", func(t *testing.T) {
		resp, err := hrClient.POST("/employees", map[string]interface{}{
			"user_id":       newHireUID,
			"employee_code": "EMP-002",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

		var env struct {
			Data struct {
				EID             uint   `json:"eid"`
				OnboardingStage string `json:"onboarding_stage"`
			} `json:"data"`
		}
		require.NoError(t, resp.DecodeJSON(&env))
		assert.Equal(t, "BASIC_INFO", env.Data.OnboardingStage)
		newHireEID = env.Data.EID
	})

	t.Run("CreateEmployee - Duplicate Profile", func(t *testing.T) {
		resp, err := hrClient.POST("/employees", map[string]interface{}{
			"user_id":       ctx.TestUser.UID,
			"employee_code": "EMP-DUP",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("GetEmployee - Not Found", func(t *testing.T) {
		resp, err := hrClient.GET("/employees/99999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("SetStage - Manual Override", func(t *testing.T) {
		resp, err := hrClient.PUT(fmt.Sprintf("/employees/%d/stage", newHireEID), map[string]interface{}{
			"stage": "NOT_JOINED",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		stageResp, err := hrClient.GET(fmt.Sprintf("/employees/%d/stage", newHireEID))
		require.NoError(t, err)
		var stage response.StageResponse
		require.NoError(t, stageResp.DecodeJSON(&stage))
		assert.Equal(t, "NOT_JOINED", stage.Stage)
	})

	t.Run("SetStage - Invalid Value", func(t *testing.T) {
		resp, err := hrClient.PUT(fmt.Sprintf("/employees/%d/stage", newHireEID), map[string]interface{}{
			"stage": "HIRED",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
