package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/services"
)

type InterviewHandler struct {
	Interviews *services.InterviewService
}

func NewInterviewHandler(svc *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{Interviews: svc}
}

// Schedule is POST /interviews, behind RequireRole(admin, recruiter).
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req dtos.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.Interviews.Schedule(&req, auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "interview_id": id})
}

// List is GET /interviews, behind RequireAuth.
func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.Interviews.List(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "interviews": interviews})
}

// Update is PUT /interviews/:id, behind RequireRole(admin, recruiter).
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dtos.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Interviews.Update(id, &req, auth.CurrentSession(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Interview updated"})
}
