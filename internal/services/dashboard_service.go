package services

import (
	"fmt"
	"time"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/format"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

// DashboardService produces the role-scoped read views behind the
// dashboard page: recent applications, upcoming interviews, naive job
// recommendations, the activity feed and the headline counters.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// RecentApplications returns the latest 10 applications visible to the
// caller: their own for candidates, those against their jobs otherwise.
func (s *DashboardService) RecentApplications(sess auth.Session) ([]dtos.ApplicationView, error) {
	type row struct {
		ID          uint
		JobID       uint
		JobTitle    string
		CompanyName string
		CandidateID uint
		FirstName   string
		LastName    string
		Email       string
		Status      string
		CoverLetter string
		AppliedAt   time.Time
	}

	var rows []row
	var err error
	if sess.Role == models.RoleCandidate {
		err = s.DB.Model(&models.Application{}).
			Select("applications.*, jobs.title AS job_title, companies.name AS company_name").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
			Where("applications.candidate_id = ?", sess.UserID).
			Order("applications.applied_at DESC").Limit(10).
			Scan(&rows).Error
	} else {
		err = s.DB.Model(&models.Application{}).
			Select("applications.*, jobs.title AS job_title, users.first_name, users.last_name, users.email").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Joins("JOIN users ON users.id = applications.candidate_id").
			Where("jobs.posted_by = ?", sess.UserID).
			Order("applications.applied_at DESC").Limit(10).
			Scan(&rows).Error
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	views := make([]dtos.ApplicationView, 0, len(rows))
	for _, r := range rows {
		views = append(views, dtos.ApplicationView{
			ID:          r.ID,
			JobID:       r.JobID,
			JobTitle:    r.JobTitle,
			CompanyName: r.CompanyName,
			CandidateID: r.CandidateID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Email:       r.Email,
			Status:      r.Status,
			StatusBadge: StatusBadge(r.Status),
			CoverLetter: r.CoverLetter,
			AppliedAt:   r.AppliedAt,
			AppliedDate: format.PostedDate(r.AppliedAt),
		})
	}
	return views, nil
}

// UpcomingInterviews returns the next 5 scheduled interviews the caller
// is party to, as candidate or as poster of the underlying job.
func (s *DashboardService) UpcomingInterviews(sess auth.Session) ([]dtos.InterviewView, error) {
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
	}

	now := time.Now()
	var rows []row
	err := s.DB.Model(&models.Interview{}).
		Select(`interviews.*, applications.job_id, jobs.title AS job_title,
			companies.name AS company_name, users.first_name, users.last_name`).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Joins("JOIN users ON users.id = applications.candidate_id").
		Where("interviews.status = ? AND interviews.scheduled_at > ?", models.InterviewStatusScheduled, now).
		Where("applications.candidate_id = ? OR jobs.posted_by = ?", sess.UserID, sess.UserID).
		Order("interviews.scheduled_at ASC").Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

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
			FormattedDate: r.ScheduledAt.Format("Jan 2, 2006 3:04 PM"),
			DaysUntil:     format.DaysUntil(r.ScheduledAt, now),
		})
	}
	return views, nil
}

// RecommendedJobs suggests up to 5 active jobs the candidate has not yet
// applied to, newest first, with the compact salary display.
func (s *DashboardService) RecommendedJobs(sess auth.Session) ([]dtos.JobView, error) {
	if sess.Role != models.RoleCandidate {
		return nil, fmt.Errorf("%w: recommendations are for candidates", app.ErrForbidden)
	}

	var rows []jobRow
	err := s.DB.Model(&models.Job{}).
		Select("jobs.*, companies.name AS company_name").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.status = ?", models.JobStatusActive).
		Where("jobs.id NOT IN (?)",
			s.DB.Model(&models.Application{}).Select("job_id").Where("candidate_id = ?", sess.UserID)).
		Order("jobs.created_at DESC").Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	now := time.Now()
	views := make([]dtos.JobView, 0, len(rows))
	for _, r := range rows {
		v := jobView(r, now)
		v.SalaryRange = format.ShortSalaryRange(r.SalaryMin, r.SalaryMax)
		views = append(views, v)
	}
	return views, nil
}

// ActivityFeed returns recent application events scoped by role: all of
// them for admins, own jobs for recruiters, own applications (as "You")
// for candidates. Each carries a relative time string.
func (s *DashboardService) ActivityFeed(sess auth.Session) ([]dtos.ActivityItem, error) {
	type row struct {
		AppliedAt time.Time
		FirstName string
		LastName  string
		JobTitle  string
	}

	query := s.DB.Model(&models.Application{}).
		Select("applications.applied_at, users.first_name, users.last_name, jobs.title AS job_title").
		Joins("JOIN users ON users.id = applications.candidate_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Order("applications.applied_at DESC").Limit(10)

	switch sess.Role {
	case models.RoleAdmin:
	case models.RoleCandidate:
		query = query.Where("applications.candidate_id = ?", sess.UserID)
	default:
		query = query.Where("jobs.posted_by = ?", sess.UserID)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	now := time.Now()
	items := make([]dtos.ActivityItem, 0, len(rows))
	for _, r := range rows {
		name := r.FirstName + " " + r.LastName
		if sess.Role == models.RoleCandidate {
			name = "You"
		}
		items = append(items, dtos.ActivityItem{
			Type:      "application",
			CreatedAt: r.AppliedAt,
			UserName:  name,
			JobTitle:  r.JobTitle,
			Action:    "applied for",
			TimeAgo:   format.TimeAgo(r.AppliedAt, now),
		})
	}
	return items, nil
}

// Stats returns the role-specific headline counters.
func (s *DashboardService) Stats(sess auth.Session) (map[string]any, error) {
	stats := map[string]any{}

	count := func(q *gorm.DB) (int64, error) {
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return 0, fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}
		return n, nil
	}

	switch sess.Role {
	case models.RoleAdmin:
		var err error
		if stats["total_users"], err = count(s.DB.Model(&models.User{}).Where("is_active = ?", true)); err != nil {
			return nil, err
		}
		if stats["active_jobs"], err = count(s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)); err != nil {
			return nil, err
		}
		if stats["total_applications"], err = count(s.DB.Model(&models.Application{})); err != nil {
			return nil, err
		}
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if stats["hires_this_month"], err = count(s.DB.Model(&models.Application{}).
			Where("status = ? AND updated_at >= ?", models.ApplicationStatusHired, monthStart)); err != nil {
			return nil, err
		}

	case models.RoleCandidate:
		var err error
		if stats["applications_sent"], err = count(s.DB.Model(&models.Application{}).
			Where("candidate_id = ?", sess.UserID)); err != nil {
			return nil, err
		}
		if stats["interviews_scheduled"], err = count(s.DB.Model(&models.Interview{}).
			Joins("JOIN applications ON applications.id = interviews.application_id").
			Where("applications.candidate_id = ? AND interviews.status = ?", sess.UserID, models.InterviewStatusScheduled)); err != nil {
			return nil, err
		}
		// Profile view tracking does not exist yet; a deterministic stub
		// stands in for it until it does.
		stats["profile_views"] = 100 + int(sess.UserID*37%100)
		completion, err := NewProfileService(s.DB).Completion(sess.UserID)
		if err != nil {
			return nil, err
		}
		stats["profile_complete"] = completion

	default: // recruiter, hiring manager
		var err error
		if stats["active_jobs"], err = count(s.DB.Model(&models.Job{}).
			Where("posted_by = ? AND status = ?", sess.UserID, models.JobStatusActive)); err != nil {
			return nil, err
		}
		if stats["total_applications"], err = count(s.DB.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.posted_by = ?", sess.UserID)); err != nil {
			return nil, err
		}
		if stats["interviews_scheduled"], err = count(s.DB.Model(&models.Interview{}).
			Joins("JOIN applications ON applications.id = interviews.application_id").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.posted_by = ? AND interviews.status = ?", sess.UserID, models.InterviewStatusScheduled)); err != nil {
			return nil, err
		}
		if stats["offers_extended"], err = count(s.DB.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.posted_by = ? AND applications.status = ?", sess.UserID, models.ApplicationStatusOffer)); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
