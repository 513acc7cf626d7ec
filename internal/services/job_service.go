package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/format"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB            *gorm.DB
	Notifications *NotificationService
}

func NewJobService(db *gorm.DB, notifications *NotificationService) *JobService {
	return &JobService{DB: db, Notifications: notifications}
}

const defaultJobLimit = 20

// jobRow is the listing projection: a job joined to its company name/logo.
type jobRow struct {
	ID               uint
	Title            string
	Description      string
	Requirements     string
	Location         string
	SalaryMin        *float64
	SalaryMax        *float64
	JobType          string
	ExperienceLevel  string
	RemoteAllowed    bool
	CompanyName      string
	CompanyLogo      string
	Status           string
	ApplicationCount int
	ViewsCount       int
	Featured         bool
	CreatedAt        time.Time
}

// CreateJob inserts a job posted by the session user. Field presence and
// enum membership are checked at binding time; status defaults to draft.
func (s *JobService) CreateJob(req *dtos.CreateJobRequest, sess auth.Session) (uint, error) {
	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		RemoteAllowed:   req.RemoteAllowed,
		CompanyID:       req.CompanyID,
		PostedBy:        sess.UserID,
		Status:          req.Status,
		ExpiresAt:       req.ExpiresAt,
	}
	if job.Status == "" {
		job.Status = models.JobStatusDraft
	}
	if err := s.DB.Create(job).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return job.ID, nil
}

// ListJobs returns active jobs matching the filters, featured first then
// newest, each with the derived display fields attached.
func (s *JobService) ListJobs(q *dtos.ListJobsQuery) ([]dtos.JobView, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultJobLimit
	}

	query := s.DB.Model(&models.Job{}).
		Select("jobs.*, companies.name AS company_name, companies.logo AS company_logo").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.status = ?", models.JobStatusActive)

	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("jobs.title LIKE ? OR jobs.description LIKE ? OR companies.name LIKE ?", like, like, like)
	}
	if q.JobType != "" {
		query = query.Where("jobs.job_type IN ?", splitCSV(q.JobType))
	}
	if q.ExperienceLevel != "" {
		query = query.Where("jobs.experience_level IN ?", splitCSV(q.ExperienceLevel))
	}
	if q.Location != "" {
		query = query.Where("jobs.location LIKE ? OR jobs.remote_allowed = ?", "%"+q.Location+"%", true)
	}

	var rows []jobRow
	err := query.Order("jobs.featured DESC, jobs.created_at DESC").
		Limit(limit).Offset(q.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	now := time.Now()
	views := make([]dtos.JobView, 0, len(rows))
	for _, r := range rows {
		views = append(views, jobView(r, now))
	}
	return views, nil
}

// GetJob returns one job by id and counts the view.
func (s *JobService) GetJob(id uint) (*dtos.JobView, error) {
	var row jobRow
	err := s.DB.Model(&models.Job{}).
		Select("jobs.*, companies.name AS company_name, companies.logo AS company_logo").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if row.ID == 0 {
		return nil, fmt.Errorf("%w: job", app.ErrNotFound)
	}

	if err := s.DB.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	row.ViewsCount++

	view := jobView(row, time.Now())
	return &view, nil
}

// Apply submits the candidate's application and bumps the job's
// application_count in the same transaction, so a failed insert never
// moves the counter and concurrent applies never lose an increment.
func (s *JobService) Apply(jobID uint, req *dtos.ApplyRequest, sess auth.Session) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: job", app.ErrNotFound)
			}
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}

		var count int64
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND candidate_id = ?", jobID, sess.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: you have already applied for this job", app.ErrConflict)
		}

		application := &models.Application{
			JobID:             jobID,
			CandidateID:       sess.UserID,
			Status:            models.ApplicationStatusApplied,
			CoverLetter:       req.CoverLetter,
			PortfolioURL:      req.PortfolioURL,
			SalaryExpectation: req.SalaryExpectation,
		}
		if err := tx.Create(application).Error; err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}

		if err := tx.Model(&models.Job{}).Where("id = ?", jobID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error; err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}

		return s.Notifications.notify(tx, job.PostedBy, models.NotificationTypeApplication,
			"New application",
			fmt.Sprintf("%s %s applied for %s", sess.FirstName, sess.LastName, job.Title),
			fmt.Sprintf("/applications?job_id=%d", jobID))
	})
	return err
}

// ListApplications returns the caller's view of the pipeline: candidates
// see their own applications, recruiters and admins see applications
// against jobs they posted.
func (s *JobService) ListApplications(sess auth.Session) ([]dtos.ApplicationView, error) {
	type appRow struct {
		ID             uint
		JobID          uint
		JobTitle       string
		CompanyName    string
		CandidateID    uint
		FirstName      string
		LastName       string
		Email          string
		Status         string
		CoverLetter    string
		RecruiterNotes string
		AppliedAt      time.Time
	}

	var rows []appRow
	var err error
	if sess.Role == models.RoleCandidate {
		err = s.DB.Model(&models.Application{}).
			Select("applications.*, jobs.title AS job_title, companies.name AS company_name").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
			Where("applications.candidate_id = ?", sess.UserID).
			Order("applications.applied_at DESC").
			Scan(&rows).Error
	} else {
		err = s.DB.Model(&models.Application{}).
			Select("applications.*, jobs.title AS job_title, users.first_name, users.last_name, users.email").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Joins("JOIN users ON users.id = applications.candidate_id").
			Where("jobs.posted_by = ?", sess.UserID).
			Order("applications.applied_at DESC").
			Scan(&rows).Error
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	views := make([]dtos.ApplicationView, 0, len(rows))
	for _, r := range rows {
		views = append(views, dtos.ApplicationView{
			ID:             r.ID,
			JobID:          r.JobID,
			JobTitle:       r.JobTitle,
			CompanyName:    r.CompanyName,
			CandidateID:    r.CandidateID,
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			Email:          r.Email,
			Status:         r.Status,
			StatusBadge:    StatusBadge(r.Status),
			CoverLetter:    r.CoverLetter,
			RecruiterNotes: r.RecruiterNotes,
			AppliedAt:      r.AppliedAt,
			AppliedDate:    format.PostedDate(r.AppliedAt),
		})
	}
	return views, nil
}

// UpdateApplicationStatus moves an application through the pipeline. The
// status must be a known value, terminal applications stay put, and
// recruiters may only touch applications on jobs they posted.
func (s *JobService) UpdateApplicationStatus(applicationID uint, status, notes string, sess auth.Session) error {
	if !models.ValidApplicationStatus(status) {
		return fmt.Errorf("%w: unknown application status %q", app.ErrValidation, status)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var application models.Application
		err := tx.Preload("Job").First(&application, applicationID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application", app.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}

		if sess.Role != models.RoleAdmin && application.Job.PostedBy != sess.UserID {
			return fmt.Errorf("%w: application belongs to another recruiter's job", app.ErrForbidden)
		}
		if models.TerminalApplicationStatus(application.Status) {
			return fmt.Errorf("%w: application already %s", app.ErrConflict, application.Status)
		}

		updates := map[string]any{"status": status, "recruiter_notes": notes}
		if err := tx.Model(&application).Updates(updates).Error; err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}

		return s.Notifications.notify(tx, application.CandidateID, models.NotificationTypeApplication,
			"Application update",
			fmt.Sprintf("Your application for %s is now %s", application.Job.Title, status),
			fmt.Sprintf("/applications/%d", application.ID))
	})
}

// Withdraw lets a candidate pull their own non-terminal application.
func (s *JobService) Withdraw(applicationID uint, sess auth.Session) error {
	var application models.Application
	err := s.DB.First(&application, applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: application", app.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if application.CandidateID != sess.UserID {
		return fmt.Errorf("%w: not your application", app.ErrForbidden)
	}
	if models.TerminalApplicationStatus(application.Status) {
		return fmt.Errorf("%w: application already %s", app.ErrConflict, application.Status)
	}

	err = s.DB.Model(&application).Update("status", models.ApplicationStatusWithdrawn).Error
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return nil
}

// StatusBadge maps an application status to its UI badge class.
func StatusBadge(status string) string {
	switch status {
	case models.ApplicationStatusApplied, models.ApplicationStatusOffer, models.ApplicationStatusHired:
		return "status-active"
	case models.ApplicationStatusScreening, models.ApplicationStatusPhoneInterview,
		models.ApplicationStatusTechnicalInterview, models.ApplicationStatusFinalInterview:
		return "status-pending"
	case models.ApplicationStatusRejected, models.ApplicationStatusWithdrawn:
		return "status-rejected"
	}
	return "status-draft"
}

func jobView(r jobRow, now time.Time) dtos.JobView {
	return dtos.JobView{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Location:         r.Location,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		JobType:          r.JobType,
		ExperienceLevel:  r.ExperienceLevel,
		RemoteAllowed:    r.RemoteAllowed,
		CompanyName:      r.CompanyName,
		CompanyLogo:      r.CompanyLogo,
		Status:           r.Status,
		ApplicationCount: r.ApplicationCount,
		ViewsCount:       r.ViewsCount,
		Featured:         r.Featured,
		CreatedAt:        r.CreatedAt,
		SalaryRange:      format.SalaryRange(r.SalaryMin, r.SalaryMax),
		PostedDate:       format.PostedDate(r.CreatedAt),
		DaysAgo:          format.DaysAgo(r.CreatedAt, now),
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
