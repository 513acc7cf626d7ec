package models

import (
	"time"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleRecruiter     Role = "recruiter"
	RoleHiringManager Role = "hiring_manager"
	RoleCandidate     Role = "candidate"
)

// Job lifecycle values.
const (
	JobStatusDraft   = "draft"
	JobStatusActive  = "active"
	JobStatusClosed  = "closed"
	JobStatusExpired = "expired"
)

// Application pipeline values. Hired, rejected and withdrawn are terminal.
const (
	ApplicationStatusApplied            = "applied"
	ApplicationStatusScreening          = "screening"
	ApplicationStatusPhoneInterview     = "phone_interview"
	ApplicationStatusTechnicalInterview = "technical_interview"
	ApplicationStatusFinalInterview     = "final_interview"
	ApplicationStatusOffer              = "offer"
	ApplicationStatusRejected           = "rejected"
	ApplicationStatusHired              = "hired"
	ApplicationStatusWithdrawn          = "withdrawn"
)

const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCancelled   = "cancelled"
	InterviewStatusRescheduled = "rescheduled"
	InterviewStatusNoShow      = "no_show"
)

const (
	NotificationTypeApplication = "application"
	NotificationTypeInterview   = "interview"
	NotificationTypeMessage     = "message"
	NotificationTypeJobMatch    = "job_match"
	NotificationTypeSystem      = "system"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	// bcrypt hash, never the plaintext
	Password string `gorm:"size:255;not null" json:"-"`
	Role     Role   `gorm:"size:20;not null" json:"role"`

	FirstName       string `gorm:"size:50;not null" json:"first_name"`
	LastName        string `gorm:"size:50;not null" json:"last_name"`
	Phone           string `gorm:"size:20" json:"phone"`
	ProfileImage    string `gorm:"size:255" json:"profile_image"`
	Bio             string `gorm:"type:text" json:"bio"`
	Skills          string `gorm:"type:text" json:"skills"`
	WorkExperience  string `gorm:"type:text" json:"work_experience"`
	Education       string `gorm:"type:text" json:"education"`
	ExperienceYears int    `gorm:"default:0" json:"experience_years"`
	Location        string `gorm:"size:100" json:"location"`

	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `gorm:"size:255" json:"website"`
	Logo        string `gorm:"size:255" json:"logo"`
	Industry    string `gorm:"size:100" json:"industry"`
	Size        string `gorm:"size:20" json:"size"`
	Location    string `gorm:"size:100" json:"location"`

	Jobs []Job `gorm:"constraint:OnDelete:SET NULL" json:"jobs,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string   `gorm:"size:255;not null" json:"title"`
	Description     string   `gorm:"type:text;not null" json:"description"`
	Requirements    string   `gorm:"type:text;not null" json:"requirements"`
	Location        string   `gorm:"size:100;not null;index" json:"location"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	JobType         string   `gorm:"size:20;not null;index" json:"job_type"`
	ExperienceLevel string   `gorm:"size:20;not null;index" json:"experience_level"`
	RemoteAllowed   bool     `gorm:"default:false" json:"remote_allowed"`

	CompanyID *uint    `json:"company_id"`
	Company   *Company `gorm:"constraint:OnDelete:SET NULL" json:"company,omitempty"`
	PostedBy  uint     `gorm:"not null" json:"posted_by"`
	Poster    User     `gorm:"foreignKey:PostedBy;constraint:OnDelete:CASCADE" json:"-"`

	Status           string     `gorm:"size:20;default:'draft';index" json:"status"`
	ExpiresAt        *time.Time `json:"expires_at"`
	ApplicationCount int        `gorm:"default:0" json:"application_count"`
	ViewsCount       int        `gorm:"default:0" json:"views_count"`
	Featured         bool       `gorm:"default:false" json:"featured"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID       uint `gorm:"not null;uniqueIndex:idx_job_candidate" json:"job_id"`
	Job         Job  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CandidateID uint `gorm:"not null;uniqueIndex:idx_job_candidate;index" json:"candidate_id"`
	Candidate   User `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"-"`

	Status            string     `gorm:"size:30;default:'applied';index" json:"status"`
	CoverLetter       string     `gorm:"type:text" json:"cover_letter"`
	ResumePath        string     `gorm:"size:255" json:"resume_path"`
	PortfolioURL      string     `gorm:"size:255" json:"portfolio_url"`
	Notes             string     `gorm:"type:text" json:"notes"`
	RecruiterNotes    string     `gorm:"type:text" json:"recruiter_notes"`
	SalaryExpectation *float64   `json:"salary_expectation"`
	AvailabilityDate  *time.Time `json:"availability_date"`
}

type Interview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint        `gorm:"not null;index" json:"application_id"`
	Application   Application `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	InterviewerID uint        `gorm:"not null" json:"interviewer_id"`
	Interviewer   User        `gorm:"foreignKey:InterviewerID;constraint:OnDelete:CASCADE" json:"-"`

	InterviewType   string    `gorm:"size:20;not null" json:"interview_type"`
	ScheduledAt     time.Time `gorm:"not null" json:"scheduled_at"`
	DurationMinutes int       `gorm:"default:60" json:"duration_minutes"`
	Location        string    `gorm:"size:255" json:"location"`
	MeetingLink     string    `gorm:"size:255" json:"meeting_link"`
	Status          string    `gorm:"size:20;default:'scheduled'" json:"status"`
	Feedback        string    `gorm:"type:text" json:"feedback"`
	// 1..5 when set
	Rating *int `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
}

type Message struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	SentAt time.Time `gorm:"autoCreateTime" json:"sent_at"`

	SenderID   uint `gorm:"not null;index" json:"sender_id"`
	Sender     User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	ReceiverID uint `gorm:"not null;index" json:"receiver_id"`
	Receiver   User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`

	Subject       string       `gorm:"size:255" json:"subject"`
	Body          string       `gorm:"type:text;not null" json:"body"`
	ApplicationID *uint        `json:"application_id"`
	Application   *Application `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	IsRead        bool         `gorm:"default:false" json:"is_read"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;index:idx_user_unread" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Type      string `gorm:"size:20;not null" json:"type"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Message   string `gorm:"type:text;not null" json:"message"`
	IsRead    bool   `gorm:"default:false;index:idx_user_unread" json:"is_read"`
	ActionURL string `gorm:"size:255" json:"action_url"`
}

// ValidApplicationStatus reports whether s is a known pipeline value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusScreening,
		ApplicationStatusPhoneInterview, ApplicationStatusTechnicalInterview,
		ApplicationStatusFinalInterview, ApplicationStatusOffer,
		ApplicationStatusRejected, ApplicationStatusHired,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// TerminalApplicationStatus reports whether s admits no further transitions.
func TerminalApplicationStatus(s string) bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}
