package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(svc *services.JobService) *JobHandler {
	return &JobHandler{JobService: svc}
}

// Create is POST /jobs, behind RequireRole(admin, recruiter).
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.JobService.CreateJob(&req, auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Job created successfully", "job_id": id})
}

// List is GET /jobs, public.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	jobs, err := h.JobService.ListJobs(&q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs, "total": len(jobs)})
}

// Get is GET /jobs/:id, public. Counts the view.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.JobService.GetJob(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// Apply is POST /jobs/:id/apply, behind RequireRole(candidate).
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.JobService.Apply(id, &req, auth.CurrentSession(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted successfully"})
}

// ListApplications is GET /applications, behind RequireAuth.
func (h *JobHandler) ListApplications(c *gin.Context) {
	applications, err := h.JobService.ListApplications(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// UpdateApplicationStatus is PUT /applications/:id/status, behind
// RequireRole(admin, recruiter).
func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dtos.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.JobService.UpdateApplicationStatus(id, req.Status, req.Notes, auth.CurrentSession(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application status updated successfully"})
}

// WithdrawApplication is POST /applications/:id/withdraw, behind
// RequireRole(candidate).
func (h *JobHandler) WithdrawApplication(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.JobService.Withdraw(id, auth.CurrentSession(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application withdrawn"})
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
