package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Jobs          *JobHandler
	Dashboard     *DashboardHandler
	Profile       *ProfileHandler
	Messages      *MessageHandler
	Interviews    *InterviewHandler
	Notifications *NotificationHandler
}

// Router assembles the gin engine with CORS and all /api/v1 routes.
func Router(db *gorm.DB, mw *auth.Middleware, h Handlers) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowCredentials = false
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck(db))

		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/logout", h.Auth.Logout)
		api.GET("/auth/me", mw.RequireAuth(), h.Auth.Me)

		api.GET("/jobs", h.Jobs.List)
		api.GET("/jobs/:id", h.Jobs.Get)
		api.POST("/jobs", mw.RequireRole(models.RoleAdmin, models.RoleRecruiter), h.Jobs.Create)
		api.POST("/jobs/:id/apply", mw.RequireRole(models.RoleCandidate), h.Jobs.Apply)

		api.GET("/applications", mw.RequireAuth(), h.Jobs.ListApplications)
		api.PUT("/applications/:id/status", mw.RequireRole(models.RoleAdmin, models.RoleRecruiter), h.Jobs.UpdateApplicationStatus)
		api.POST("/applications/:id/withdraw", mw.RequireRole(models.RoleCandidate), h.Jobs.WithdrawApplication)

		dashboard := api.Group("/dashboard", mw.RequireAuth())
		{
			dashboard.GET("/recent-applications", h.Dashboard.RecentApplications)
			dashboard.GET("/upcoming-interviews", h.Dashboard.UpcomingInterviews)
			dashboard.GET("/recommended-jobs", h.Dashboard.RecommendedJobs)
			dashboard.GET("/activity-feed", h.Dashboard.ActivityFeed)
			dashboard.GET("/stats", h.Dashboard.Stats)
		}

		api.GET("/profile", mw.RequireAuth(), h.Profile.Get)
		api.PUT("/profile", mw.RequireAuth(), h.Profile.Update)

		messages := api.Group("/messages", mw.RequireAuth())
		{
			messages.POST("", h.Messages.Send)
			messages.GET("", h.Messages.List)
			messages.GET("/unread-count", h.Messages.UnreadCount)
			messages.PUT("/:id/read", h.Messages.MarkRead)
		}

		api.POST("/interviews", mw.RequireRole(models.RoleAdmin, models.RoleRecruiter), h.Interviews.Schedule)
		api.GET("/interviews", mw.RequireAuth(), h.Interviews.List)
		api.PUT("/interviews/:id", mw.RequireRole(models.RoleAdmin, models.RoleRecruiter), h.Interviews.Update)

		notifications := api.Group("/notifications", mw.RequireAuth())
		{
			notifications.GET("", h.Notifications.List)
			notifications.PUT("/:id/read", h.Notifications.MarkRead)
			notifications.PUT("/read-all", h.Notifications.MarkAllRead)
		}
	}

	return r
}
