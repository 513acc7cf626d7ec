package main

import (
	"log"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/config"
	"github.com/recruitwarx/portal/internal/database"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/handlers"
	"github.com/recruitwarx/portal/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg)

	// 3. Cross-field validation on job creation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(salaryRangeValidation, dtos.CreateJobRequest{})
	}

	// 4. Sessions
	store := auth.NewMemoryStore(cfg.Session.TTL)
	mw := auth.NewMiddleware(store, cfg.Session.CookieName)

	// 5. Core Services
	notificationService := services.NewNotificationService(db)
	authService := services.NewAuthService(db)
	jobService := services.NewJobService(db, notificationService)
	dashboardService := services.NewDashboardService(db)
	profileService := services.NewProfileService(db)
	messageService := services.NewMessageService(db, notificationService)
	interviewService := services.NewInterviewService(db, notificationService)

	// 6. Handlers & Router
	r := handlers.Router(db, mw, handlers.Handlers{
		Auth:          handlers.NewAuthHandler(authService, store, cfg.Session.CookieName, cfg.Session.TTL),
		Jobs:          handlers.NewJobHandler(jobService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Profile:       handlers.NewProfileHandler(profileService),
		Messages:      handlers.NewMessageHandler(messageService),
		Interviews:    handlers.NewInterviewHandler(interviewService),
		Notifications: handlers.NewNotificationHandler(notificationService),
	})

	log.Printf("🚀 Server starting on %s...", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// salaryRangeValidation rejects postings whose salary_max undercuts
// salary_min.
func salaryRangeValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(dtos.CreateJobRequest)
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		sl.ReportError(req.SalaryMax, "salary_max", "SalaryMax", "salaryrange", "")
	}
}
