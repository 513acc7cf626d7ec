package dtos

import "time"

type LoginRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required,oneof=admin recruiter hiring_manager candidate"`
	Password  string `json:"password" binding:"required,min=6"`
}

// CreateJobRequest carries a struct-level salaryrange validation
// registered in main: salary_max must not undercut salary_min.
type CreateJobRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Requirements    string   `json:"requirements" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	JobType         string   `json:"job_type" binding:"required,oneof=full-time part-time contract internship"`
	ExperienceLevel string   `json:"experience_level" binding:"required,oneof=entry mid senior executive"`
	RemoteAllowed   bool     `json:"remote_allowed"`
	CompanyID       *uint    `json:"company_id"`
	Status          string   `json:"status" binding:"omitempty,oneof=draft active"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type ListJobsQuery struct {
	Search          string `form:"search"`
	JobType         string `form:"job_type"`
	ExperienceLevel string `form:"experience_level"`
	Location        string `form:"location"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

type ApplyRequest struct {
	CoverLetter       string   `json:"cover_letter"`
	PortfolioURL      string   `json:"portfolio_url"`
	SalaryExpectation *float64 `json:"salary_expectation"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
}

type SendMessageRequest struct {
	ReceiverID    uint   `json:"receiver_id" binding:"required"`
	Subject       string `json:"subject"`
	Body          string `json:"body" binding:"required"`
	ApplicationID *uint  `json:"application_id"`
}

type ScheduleInterviewRequest struct {
	ApplicationID   uint      `json:"application_id" binding:"required"`
	InterviewType   string    `json:"interview_type" binding:"required,oneof=phone video in_person technical behavioral"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	MeetingLink     string    `json:"meeting_link"`
}

type UpdateInterviewRequest struct {
	Status   string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled no_show"`
	Feedback string `json:"feedback"`
	Rating   *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}
