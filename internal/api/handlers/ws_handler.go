package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/onboardhq/onboard-go/internal/application"
	"github.com/onboardhq/onboard-go/pkg/response"
	"github.com/onboardhq/onboard-go/pkg/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OnboardingStreamHandler pushes stage and per-form status snapshots to the
// HR dashboard over a websocket.
type OnboardingStreamHandler struct {
	submissions *application.SubmissionService
	stage       *application.StageService
}

func NewOnboardingStreamHandler(submissions *application.SubmissionService, stage *application.StageService) *OnboardingStreamHandler {
	return &OnboardingStreamHandler{submissions: submissions, stage: stage}
}

type onboardingSnapshot struct {
	EmployeeID uint        `json:"employee_id"`
	Stage      string      `json:"stage"`
	Forms      interface{} `json:"forms"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Watch streams onboarding progress for one employee until the client
// disconnects. A snapshot goes out immediately and then on a fixed
// interval.
func (h *OnboardingStreamHandler) Watch(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}
	defer ws.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		if err := h.sendSnapshot(ws, employeeID); err != nil {
			return
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func (h *OnboardingStreamHandler) sendSnapshot(ws *websocket.Conn, employeeID uint) error {
	stage, err := h.stage.GetStage(employeeID)
	if err != nil {
		ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(4004, "employee not found"), time.Now().Add(5*time.Second))
		return err
	}
	forms, err := h.submissions.ListFormStatus(employeeID)
	if err != nil {
		return err
	}

	return ws.WriteJSON(onboardingSnapshot{
		EmployeeID: employeeID,
		Stage:      string(stage),
		Forms:      forms,
		Timestamp:  time.Now(),
	})
}
