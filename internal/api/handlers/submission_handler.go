package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/pkg/response"
	"github.com/onboardhq/onboard-go/pkg/utils"
)

type SubmissionHandler struct {
	svc       *application.SubmissionService
	employees *application.EmployeeService
	repos     *repository.Repos
}

func NewSubmissionHandler(svc *application.SubmissionService, employees *application.EmployeeService, repos *repository.Repos) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, employees: employees, repos: repos}
}

// callerEmployeeID resolves the authenticated principal to its employee
// profile. Writes the error response itself on failure.
func (h *SubmissionHandler) callerEmployeeID(c *gin.Context) (uint, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	emp, err := h.employees.GetEmployeeByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No employee profile for user"})
		return 0, false
	}
	return emp.EID, true
}

func writeSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidFormType),
		errors.Is(err, application.ErrInvalidDecision),
		errors.Is(err, application.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotSubmitted),
		errors.Is(err, application.ErrFormNotFound),
		errors.Is(err, application.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrConflict),
		errors.Is(err, application.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

// SaveForm godoc
// @Summary Save a form as draft or submit it
// @Tags forms
// @Accept json
// @Produce json
// @Param type path string true "Form type"
// @Param input body submission.SaveFormInput true "Form payload and draft flag"
// @Success 200 {object} response.SaveFormResponse
// @Failure 400 {object} response.ErrorResponse "Unknown form type or bad payload"
// @Failure 409 {object} response.ErrorResponse "Concurrent update or version awaiting verification"
// @Router /forms/{type} [put]
func (h *SubmissionHandler) SaveForm(c *gin.Context) {
	employeeID, ok := h.callerEmployeeID(c)
	if !ok {
		return
	}

	var input submission.SaveFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	formType := submission.FormType(c.Param("type"))
	rec, err := h.svc.SaveForm(employeeID, formType, input)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "SAVE_FORM", "form_submission", fmt.Sprint(rec.ID),
		nil, rec, fmt.Sprintf("%s v%d -> %s", rec.FormType, rec.Version, rec.Status), h.repos.Audit)

	c.JSON(http.StatusOK, response.SaveFormResponse{
		ID:      rec.ID,
		Status:  string(rec.Status),
		Version: rec.Version,
	})
}

// GetFormStatus godoc
// @Summary Latest record of one form type for the caller
// @Tags forms
// @Produce json
// @Param type path string true "Form type"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{type} [get]
func (h *SubmissionHandler) GetFormStatus(c *gin.Context) {
	employeeID, ok := h.callerEmployeeID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetFormStatus(employeeID, submission.FormType(c.Param("type")))
	if err != nil {
		writeSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: view})
}

func (h *SubmissionHandler) ListForms(c *gin.Context) {
	employeeID, ok := h.callerEmployeeID(c)
	if !ok {
		return
	}

	views, err := h.svc.ListFormStatus(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: views})
}

func (h *SubmissionHandler) GetEmployeeForm(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	view, err := h.svc.GetFormStatus(employeeID, submission.FormType(c.Param("type")))
	if err != nil {
		writeSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: view})
}

func (h *SubmissionHandler) ListEmployeeForms(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	views, err := h.svc.ListFormStatus(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: views})
}

// VerifyForm godoc
// @Summary Verify or reject the latest submitted version of a form
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param type path string true "Form type"
// @Param input body submission.VerifyFormInput true "Decision and optional reason"
// @Success 200 {object} response.VerifyFormResponse
// @Failure 400 {object} response.ErrorResponse "Invalid decision or missing reason"
// @Failure 404 {object} response.ErrorResponse "No submitted version"
// @Router /employees/{id}/forms/{type}/verify [put]
func (h *SubmissionHandler) VerifyForm(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	reviewerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input submission.VerifyFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	rec, err := h.svc.VerifyForm(employeeID, submission.FormType(c.Param("type")), input, reviewerID)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "VERIFY_FORM", "form_submission", fmt.Sprint(rec.ID),
		nil, rec, fmt.Sprintf("%s v%d -> %s", rec.FormType, rec.Version, rec.Status), h.repos.Audit)

	c.JSON(http.StatusOK, response.VerifyFormResponse{Status: string(rec.Status)})
}
