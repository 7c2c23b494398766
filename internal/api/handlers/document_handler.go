package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/pkg/response"
	"github.com/onboardhq/onboard-go/pkg/utils"
)

type DocumentHandler struct {
	svc       *application.DocumentService
	employees *application.EmployeeService
}

func NewDocumentHandler(svc *application.DocumentService, employees *application.EmployeeService) *DocumentHandler {
	return &DocumentHandler{svc: svc, employees: employees}
}

// Upload godoc
// @Summary Upload an onboarding document for an employee
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Employee ID"
// @Param file formData file true "Document file"
// @Success 201 {object} response.SuccessResponse
// @Router /employees/{id}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	uploadedBy, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if _, err := h.employees.GetEmployeeByID(employeeID); err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Employee not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	doc, err := h.svc.UploadDocument(c.Request.Context(), employeeID, uploadedBy,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: doc})
}

func (h *DocumentHandler) List(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	docs, err := h.svc.ListDocuments(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: docs})
}

func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid document id"})
		return
	}

	doc, content, err := h.svc.DownloadDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+doc.Name+"\"")
	c.Data(http.StatusOK, doc.ContentType, content)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid document id"})
		return
	}

	if err := h.svc.DeleteDocument(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}
