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

type formStatus struct {
	ID              uint                   `json:"id"`
	FormType        string                 `json:"form_type"`
	Version         uint                   `json:"version"`
	Status          string                 `json:"status"`
	Data            map[string]interface{} `json:"data"`
	RejectionReason *string                `json:"rejection_reason"`
}

type statusEnvelope struct {
	Data formStatus `json:"data"`
}

func TestFormLifecycle_Integration(t *testing.T) {
	ctx := GetTestContext()
	employeeClient := NewHTTPClient(ctx.Router, ctx.EmployeeToken)
	hrClient := NewHTTPClient(ctx.Router, ctx.HRToken)
	eid := ctx.TestEmployee.EID

	t.Run("SaveForm - Unauthorized without Token", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")
		resp, err := client.PUT("/forms/GRATUITY", map[string]interface{}{
			"data": map[string]interface{}{},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("SaveForm - Unknown Type", func(t *testing.T) {
		resp, err := employeeClient.PUT("/forms/PAYSLIP", map[string]interface{}{
			"data": map[string]interface{}{"x": 1},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("SaveForm - Draft Creates Version One", func(t *testing.T) {
		resp, err := employeeClient.PUT("/forms/GRATUITY", map[string]interface{}{
			"data":  map[string]interface{}{"nominee": "Jane", "share": 100},
			"draft": true,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var saved response.SaveFormResponse
		require.NoError(t, resp.DecodeJSON(&saved))
		assert.Equal(t, "DRAFT", saved.Status)
		assert.Equal(t, uint(1), saved.Version)
	})

	t.Run("SaveForm - Submit Merges Draft Payload", func(t *testing.T) {
		resp, err := employeeClient.PUT("/forms/GRATUITY", map[string]interface{}{
			"data": map[string]interface{}{"nominee": "Janet"},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var saved response.SaveFormResponse
		require.NoError(t, resp.DecodeJSON(&saved))
		assert.Equal(t, "SUBMITTED", saved.Status)
		assert.Equal(t, uint(1), saved.Version)

		statusResp, err := employeeClient.GET("/forms/GRATUITY")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, statusResp.StatusCode)

		var env statusEnvelope
		require.NoError(t, statusResp.DecodeJSON(&env))
		assert.Equal(t, "Janet", env.Data.Data["nominee"])
		assert.Equal(t, float64(100), env.Data.Data["share"])
	})

	t.Run("SaveForm - Locked While Awaiting Verification", func(t *testing.T) {
		resp, err := employeeClient.PUT("/forms/GRATUITY", map[string]interface{}{
			"data": map[string]interface{}{"nominee": "Someone Else"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("VerifyForm - Employee Forbidden", func(t *testing.T) {
		resp, err := employeeClient.PUT(
			fmt.Sprintf("/employees/%d/forms/GRATUITY/verify", eid),
			map[string]interface{}{"decision": "VERIFIED"},
		)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("VerifyForm - Rejection Needs Reason", func(t *testing.T) {
		resp, err := hrClient.PUT(
			fmt.Sprintf("/employees/%d/forms/GRATUITY/verify", eid),
			map[string]interface{}{"decision": "REJECTED"},
		)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("VerifyForm - Reject Keeps Version", func(t *testing.T) {
		resp, err := hrClient.PUT(
			fmt.Sprintf("/employees/%d/forms/GRATUITY/verify", eid),
			map[string]interface{}{"decision": "REJECTED", "reason": "nominee share missing"},
		)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		statusResp, err := employeeClient.GET("/forms/GRATUITY")
		require.NoError(t, err)
		var env statusEnvelope
		require.NoError(t, statusResp.DecodeJSON(&env))
		assert.Equal(t, "REJECTED", env.Data.Status)
		assert.Equal(t, uint(1), env.Data.Version)
		require.NotNil(t, env.Data.RejectionReason)
		assert.Equal(t, "nominee share missing", *env.Data.RejectionReason)
	})

	t.Run("SaveForm - Resubmit Reuses Rejected Version", func(t *testing.T) {
		resp, err := employeeClient.PUT("/forms/GRATUITY", map[string]interface{}{
			"data": map[string]interface{}{"share": 100},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var saved response.SaveFormResponse
		require.NoError(t, resp.DecodeJSON(&saved))
		assert.Equal(t, "SUBMITTED", saved.Status)
		assert.Equal(t, uint(1), saved.Version)

		statusResp, err := employeeClient.GET("/forms/GRATUITY")
		require.NoError(t, err)
		var env statusEnvelope
		require.NoError(t, statusResp.DecodeJSON(&env))
		assert.Nil(t, env.Data.RejectionReason)
	})

	t.Run("VerifyForm - Approve", func(t *testing.T) {
		resp, err := hrClient.PUT(
			fmt.Sprintf("/employees/%d/forms/GRATUITY/verify", eid),
			map[string]interface{}{"decision": "VERIFIED"},
		)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var verified response.VerifyFormResponse
		require.NoError(t, resp.DecodeJSON(&verified))
		assert.Equal(t, "VERIFIED", verified.Status)

		// other required forms are outstanding, stage must not move
		stageResp, err := hrClient.GET(fmt.Sprintf("/employees/%d/stage", eid))
		require.NoError(t, err)
		var stage response.StageResponse
		require.NoError(t, stageResp.DecodeJSON(&stage))
		assert.Equal(t, "PRE_JOINING", stage.Stage)
	})

	t.Run("VerifyForm - Nothing Submitted", func(t *testing.T) {
		resp, err := hrClient.PUT(
			fmt.Sprintf("/employees/%d/forms/GRATUITY/verify", eid),
			map[string]interface{}{"decision": "VERIFIED"},
		)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("DisableForms - Completing the Set Advances Stage", func(t *testing.T) {
		for _, form := range []string{"EMPLOYEE_INFO", "MEDICLAIM", "EMPLOYMENT_APP"} {
			resp, err := hrClient.PUT(
				fmt.Sprintf("/employees/%d/forms/%s/disable", eid, form),
				map[string]interface{}{"disabled": true},
			)
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		}

		stageResp, err := hrClient.GET(fmt.Sprintf("/employees/%d/stage", eid))
		require.NoError(t, err)
		var stage response.StageResponse
		require.NoError(t, stageResp.DecodeJSON(&stage))
		assert.Equal(t, "PRE_JOINING_VERIFIED", stage.Stage)
	})

	t.Run("SaveForm - New Cycle After Verification", func(t *testing.T) {
		resp, err := employeeClient.PUT("/forms/GRATUITY", map[string]interface{}{
			"data":  map[string]interface{}{"nominee": "June"},
			"draft": true,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var saved response.SaveFormResponse
		require.NoError(t, resp.DecodeJSON(&saved))
		assert.Equal(t, "DRAFT", saved.Status)
		assert.Equal(t, uint(2), saved.Version)
	})
}
