package dtos

import "time"

// JobView is a job row plus the derived display fields the listing adds.
type JobView struct {
	ID               uint     `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements"`
	Location         string   `json:"location"`
	SalaryMin        *float64 `json:"salary_min"`
	SalaryMax        *float64 `json:"salary_max"`
	JobType          string   `json:"job_type"`
	ExperienceLevel  string   `json:"experience_level"`
	RemoteAllowed    bool     `json:"remote_allowed"`
	CompanyName      string   `json:"company_name"`
	CompanyLogo      string   `json:"company_logo"`
	Status           string   `json:"status"`
	ApplicationCount int      `json:"application_count"`
	ViewsCount       int      `json:"views_count"`
	Featured         bool     `json:"featured"`
	CreatedAt        time.Time `json:"created_at"`

	SalaryRange string `json:"salary_range"`
	PostedDate  string `json:"posted_date"`
	DaysAgo     int    `json:"days_ago"`
}

// ApplicationView is an application joined to its job, and to the
// candidate when the viewer is the recruiter side.
type ApplicationView struct {
	ID             uint      `json:"id"`
	JobID          uint      `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name,omitempty"`
	CandidateID    uint      `json:"candidate_id"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	Email          string    `json:"email,omitempty"`
	Status         string    `json:"status"`
	StatusBadge    string    `json:"status_badge"`
	CoverLetter    string    `json:"cover_letter"`
	RecruiterNotes string    `json:"recruiter_notes,omitempty"`
	AppliedAt      time.Time `json:"applied_at"`
	AppliedDate    string    `json:"applied_date"`
}

type InterviewView struct {
	ID            uint      `json:"id"`
	ApplicationID uint      `json:"application_id"`
	JobID         uint      `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	CompanyName   string    `json:"company_name"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	InterviewType string    `json:"interview_type"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        string    `json:"status"`
	Feedback      string    `json:"feedback,omitempty"`
	Rating        *int      `json:"rating,omitempty"`
	FormattedDate string    `json:"formatted_date"`
	DaysUntil     int       `json:"days_until"`
}

// ActivityItem is one row of the dashboard feed.
type ActivityItem struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	JobTitle  string    `json:"job_title"`
	Action    string    `json:"action"`
	TimeAgo   string    `json:"time_ago"`
}

type MessageView struct {
	ID            uint      `json:"id"`
	SenderID      uint      `json:"sender_id"`
	SenderName    string    `json:"sender_name"`
	ReceiverID    uint      `json:"receiver_id"`
	ReceiverName  string    `json:"receiver_name"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	ApplicationID *uint     `json:"application_id,omitempty"`
	IsRead        bool      `json:"is_read"`
	SentAt        time.Time `json:"sent_at"`
}

// ProfileView is the profile read model: editable fields plus the
// completeness percentage and the parsed structured blobs.
type ProfileView struct {
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Location          string           `json:"location"`
	Bio               string           `json:"bio"`
	Role              string           `json:"role"`
	Skills            string           `json:"skills"`
	ProfileCompletion int              `json:"profile_completion"`
	WorkExperience    []ExperienceItem `json:"work_experience"`
	Education         []EducationItem  `json:"education"`
}

type ExperienceItem struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}
