package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/internal/domain/employee"
	"github.com/onboardhq/onboard-go/internal/domain/submission"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/pkg/response"
	"github.com/onboardhq/onboard-go/pkg/utils"
)

type EmployeeHandler struct {
	svc   *application.EmployeeService
	stage *application.StageService
	repos *repository.Repos
}

func NewEmployeeHandler(svc *application.EmployeeService, stage *application.StageService, repos *repository.Repos) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, stage: stage, repos: repos}
}

func writeEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrEmployeeNotFound),
		errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrEmployeeExists):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidFormType),
		errors.Is(err, application.ErrInvalidStageValue):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var input employee.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	emp, err := h.svc.CreateEmployee(input)
	if err != nil {
		writeEmployeeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "CREATE", "employee", fmt.Sprint(emp.EID),
		nil, emp, "employee profile created", h.repos.Audit)

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: emp})
}

func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	emp, err := h.svc.GetEmployeeByID(id)
	if err != nil {
		writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: emp})
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	employees, err := h.svc.ListEmployeesPaging(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: employees})
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	var input employee.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	emp, err := h.svc.UpdateEmployee(id, input)
	if err != nil {
		writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: emp})
}

// SetFormDisabled godoc
// @Summary Exclude or re-include a form in the employee's required set
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param type path string true "Form type"
// @Param input body employee.SetFormDisabledInput true "Disabled flag"
// @Success 200 {object} response.SuccessResponse
// @Router /employees/{id}/forms/{type}/disable [put]
func (h *EmployeeHandler) SetFormDisabled(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	var input employee.SetFormDisabledInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	formType := submission.FormType(c.Param("type"))
	emp, err := h.svc.SetFormDisabled(id, formType, *input.Disabled)
	if err != nil {
		writeEmployeeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "TOGGLE_FORM", "employee", fmt.Sprint(id),
		nil, emp.DisabledForms, fmt.Sprintf("%s disabled=%v", formType, *input.Disabled), h.repos.Audit)

	c.JSON(http.StatusOK, response.SuccessResponse{Data: emp})
}

// GetStage godoc
// @Summary Current onboarding stage
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.StageResponse
// @Router /employees/{id}/stage [get]
func (h *EmployeeHandler) GetStage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	stage, err := h.stage.GetStage(id)
	if err != nil {
		writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StageResponse{EmployeeID: id, Stage: string(stage)})
}

// Reevaluate triggers a stage check by hand. Safe to call redundantly.
func (h *EmployeeHandler) Reevaluate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	stage, err := h.stage.Reevaluate(id)
	if err != nil {
		writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StageResponse{EmployeeID: id, Stage: string(stage)})
}

// SetStage is the manual administrative override, including NOT_JOINED.
func (h *EmployeeHandler) SetStage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	var input struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	emp, err := h.svc.SetStage(id, employee.OnboardingStage(input.Stage))
	if err != nil {
		writeEmployeeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "SET_STAGE", "employee", fmt.Sprint(id),
		nil, emp.OnboardingStage, "manual stage override", h.repos.Audit)

	c.JSON(http.StatusOK, response.StageResponse{EmployeeID: id, Stage: string(emp.OnboardingStage)})
}
