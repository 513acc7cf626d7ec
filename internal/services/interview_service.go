package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/format"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

type InterviewService struct {
	DB            *gorm.DB
	Notifications *NotificationService
}

func NewInterviewService(db *gorm.DB, notifications *NotificationService) *InterviewService {
	return &InterviewService{DB: db, Notifications: notifications}
}

// Schedule books an interview against an application. Recruiters may only
// schedule on their own jobs; the candidate gets a notification.
func (s *InterviewService) Schedule(req *dtos.ScheduleInterviewRequest, sess auth.Session) (uint, error) {
	var interview models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var application models.Application
		err := tx.Preload("Job").First(&application, req.ApplicationID).Error
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

		interview = models.Interview{
			ApplicationID:   req.ApplicationID,
			InterviewerID:   sess.UserID,
			InterviewType:   req.InterviewType,
			ScheduledAt:     req.ScheduledAt,
			DurationMinutes: req.DurationMinutes,
			Location:        req.Location,
			MeetingLink:     req.MeetingLink,
			Status:          models.InterviewStatusScheduled,
		}
		if interview.DurationMinutes <= 0 {
			interview.DurationMinutes = 60
		}
		if err := tx.Create(&interview).Error; err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}

		return s.Notifications.notify(tx, application.CandidateID, models.NotificationTypeInterview,
			"Interview scheduled",
			fmt.Sprintf("Interview for %s on %s", application.Job.Title, req.ScheduledAt.Format("Jan 2, 2006 3:04 PM")),
			fmt.Sprintf("/interviews/%d", interview.ID))
	})
	if err != nil {
		return 0, err
	}
	return interview.ID, nil
}

// List returns the interviews the caller is party to, soonest first.
func (s *InterviewService) List(sess auth.Session) ([]dtos.InterviewView, error) {
	type row struct {
		ID            uint
		ApplicationID uint
		JobID         uint
		JobTitle      string
		CompanyName   string
		FirstName     string
		LastName      string
		InterviewType string
		ScheduledAt   time.Time
		Status        string
		Feedback      string
		Rating        *int
	}

	var rows []row
	err := s.DB.Model(&models.Interview{}).
		Select(`interviews.*, applications.job_id, jobs.title AS job_title,
			companies.name AS company_name, users.first_name, users.last_name`).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Joins("JOIN users ON users.id = applications.candidate_id").
		Where("applications.candidate_id = ? OR jobs.posted_by = ?", sess.UserID, sess.UserID).
		Order("interviews.scheduled_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	now := time.Now()
	views := make([]dtos.InterviewView, 0, len(rows))
	for _, r := range rows {
		views = append(views, dtos.InterviewView{
			ID:            r.ID,
			ApplicationID: r.ApplicationID,
			JobID:         r.JobID,
			JobTitle:      r.JobTitle,
			CompanyName:   r.CompanyName,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			InterviewType: r.InterviewType,
			ScheduledAt:   r.ScheduledAt,
			Status:        r.Status,
			Feedback:      r.Feedback,
			Rating:        r.Rating,
			FormattedDate: r.ScheduledAt.Format("Jan 2, 2006 3:04 PM"),
			DaysUntil:     format.DaysUntil(r.ScheduledAt, now),
		})
	}
	return views, nil
}

// Update records the outcome of an interview: status, feedback, rating.
// Rating bounds are enforced at binding time and again here for callers
// that bypass the HTTP layer.
func (s *InterviewService) Update(id uint, req *dtos.UpdateInterviewRequest, sess auth.Session) error {
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", app.ErrValidation)
	}

	var interview models.Interview
	err := s.DB.Preload("Application.Job").First(&interview, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: interview", app.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if sess.Role != models.RoleAdmin && interview.Application.Job.PostedBy != sess.UserID {
		return fmt.Errorf("%w: interview belongs to another recruiter's job", app.ErrForbidden)
	}

	updates := map[string]any{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Feedback != "" {
		updates["feedback"] = req.Feedback
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.DB.Model(&interview).Updates(updates).Error; err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return nil
}
