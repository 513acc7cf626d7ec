package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc}
}

// RecentApplications is GET /dashboard/recent-applications.
func (h *DashboardHandler) RecentApplications(c *gin.Context) {
	applications, err := h.Dashboard.RecentApplications(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// UpcomingInterviews is GET /dashboard/upcoming-interviews.
func (h *DashboardHandler) UpcomingInterviews(c *gin.Context) {
	interviews, err := h.Dashboard.UpcomingInterviews(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "interviews": interviews})
}

// RecommendedJobs is GET /dashboard/recommended-jobs.
func (h *DashboardHandler) RecommendedJobs(c *gin.Context) {
	jobs, err := h.Dashboard.RecommendedJobs(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// ActivityFeed is GET /dashboard/activity-feed.
func (h *DashboardHandler) ActivityFeed(c *gin.Context) {
	activities, err := h.Dashboard.ActivityFeed(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "activities": activities})
}

// Stats is GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Dashboard.Stats(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
