package services

import (
	"testing"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))
	recruiter := sessionFor(t, db, "recruiter")

	id, err := svc.CreateJob(&dtos.CreateJobRequest{
		Title:           "Backend Engineer",
		Description:     "Build APIs",
		Requirements:    "Go, SQL",
		Location:        "Remote",
		JobType:         "full-time",
		ExperienceLevel: "mid",
	}, recruiter)
	require.NoError(t, err)
	require.NotZero(t, id)

	var job models.Job
	require.NoError(t, db.First(&job, id).Error)
	assert.Equal(t, recruiter.UserID, job.PostedBy)
	assert.Equal(t, models.JobStatusDraft, job.Status, "status defaults to draft")
}

func TestListJobsOnlyActive(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))
	recruiter := sessionFor(t, db, "recruiter")

	// A draft and a closed job must never show up.
	_, err := svc.CreateJob(&dtos.CreateJobRequest{
		Title: "Draft Role", Description: "d", Requirements: "r", Location: "Remote",
		JobType: "contract", ExperienceLevel: "entry",
	}, recruiter)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Job{}).Where("title = ?", "Senior Software Engineer").
		Update("status", models.JobStatusClosed).Error)

	jobs, err := svc.ListJobs(&dtos.ListJobsQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.Equal(t, models.JobStatusActive, j.Status)
	}
}

func TestListJobsFilters(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))

	tests := []struct {
		name   string
		query  dtos.ListJobsQuery
		titles []string
	}{
		{
			name:   "search matches title",
			query:  dtos.ListJobsQuery{Search: "Frontend"},
			titles: []string{"Junior Frontend Developer"},
		},
		{
			name:   "search matches company name",
			query:  dtos.ListJobsQuery{Search: "Creative Agency"},
			titles: []string{"UX/UI Designer"},
		},
		{
			name:   "job type set membership",
			query:  dtos.ListJobsQuery{JobType: "contract,internship"},
			titles: []string{"Data Analyst"},
		},
		{
			name:   "experience level set membership",
			query:  dtos.ListJobsQuery{ExperienceLevel: "entry,senior"},
			titles: []string{"Senior Software Engineer", "Junior Frontend Developer"},
		},
		{
			name:   "location substring",
			query:  dtos.ListJobsQuery{Location: "Austin"},
			titles: []string{"Junior Frontend Developer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := svc.ListJobs(&tt.query)
			require.NoError(t, err)

			var got []string
			for _, j := range jobs {
				got = append(got, j.Title)
			}
			assert.ElementsMatch(t, tt.titles, got)
		})
	}
}

func TestListJobsDerivedFields(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))

	jobs, err := svc.ListJobs(&dtos.ListJobsQuery{Search: "Senior Software Engineer"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "$120,000 - $150,000", jobs[0].SalaryRange)
	assert.Equal(t, "TechCorp Inc.", jobs[0].CompanyName)
	assert.Equal(t, 0, jobs[0].DaysAgo)
	assert.NotEmpty(t, jobs[0].PostedDate)
}

func TestApply(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))
	candidate := sessionFor(t, db, "candidate")
	recruiter := sessionFor(t, db, "recruiter")

	var job4 models.Job
	require.NoError(t, db.Where("title = ?", "Junior Frontend Developer").First(&job4).Error)
	before := job4.ApplicationCount

	require.NoError(t, svc.Apply(job4.ID, &dtos.ApplyRequest{CoverLetter: "hi"}, candidate))

	require.NoError(t, db.First(&job4, job4.ID).Error)
	assert.Equal(t, before+1, job4.ApplicationCount, "application_count increments by exactly 1")

	// The poster gets notified.
	var n int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", recruiter.UserID, models.NotificationTypeApplication).
		Count(&n).Error)
	assert.EqualValues(t, 1, n)

	t.Run("repeat apply conflicts without second increment", func(t *testing.T) {
		err := svc.Apply(job4.ID, &dtos.ApplyRequest{}, candidate)
		assert.ErrorIs(t, err, app.ErrConflict)

		require.NoError(t, db.First(&job4, job4.ID).Error)
		assert.Equal(t, before+1, job4.ApplicationCount)

		var apps int64
		require.NoError(t, db.Model(&models.Application{}).
			Where("job_id = ? AND candidate_id = ?", job4.ID, candidate.UserID).
			Count(&apps).Error)
		assert.EqualValues(t, 1, apps, "at most one application per (job, candidate)")
	})

	t.Run("missing job", func(t *testing.T) {
		err := svc.Apply(99999, &dtos.ApplyRequest{}, candidate)
		assert.ErrorIs(t, err, app.ErrNotFound)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))
	recruiter := sessionFor(t, db, "recruiter")
	admin := sessionFor(t, db, "admin")

	var application models.Application
	require.NoError(t, db.Where("status = ?", models.ApplicationStatusApplied).First(&application).Error)

	t.Run("unknown status value", func(t *testing.T) {
		err := svc.UpdateApplicationStatus(application.ID, "interview", "", recruiter)
		assert.ErrorIs(t, err, app.ErrValidation)
	})

	t.Run("recruiter moves own application", func(t *testing.T) {
		err := svc.UpdateApplicationStatus(application.ID, models.ApplicationStatusScreening, "promising", recruiter)
		require.NoError(t, err)

		require.NoError(t, db.First(&application, application.ID).Error)
		assert.Equal(t, models.ApplicationStatusScreening, application.Status)
		assert.Equal(t, "promising", application.RecruiterNotes)
	})

	t.Run("foreign recruiter is rejected", func(t *testing.T) {
		other := recruiter
		other.UserID = recruiter.UserID + 1000
		err := svc.UpdateApplicationStatus(application.ID, models.ApplicationStatusOffer, "", other)
		assert.ErrorIs(t, err, app.ErrForbidden)
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		err := svc.UpdateApplicationStatus(application.ID, models.ApplicationStatusHired, "", admin)
		require.NoError(t, err)
	})

	t.Run("terminal state is immutable", func(t *testing.T) {
		err := svc.UpdateApplicationStatus(application.ID, models.ApplicationStatusScreening, "", admin)
		assert.ErrorIs(t, err, app.ErrConflict)
	})
}

func TestWithdraw(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db, NewNotificationService(db))
	candidate := sessionFor(t, db, "candidate")

	var application models.Application
	require.NoError(t, db.Where("candidate_id = ?", candidate.UserID).First(&application).Error)

	require.NoError(t, svc.Withdraw(application.ID, candidate))
	require.NoError(t, db.First(&application, application.ID).Error)
	assert.Equal(t, models.ApplicationStatusWithdrawn, application.Status)

	t.Run("withdrawn is terminal", func(t *testing.T) {
		err := svc.Withdraw(application.ID, candidate)
		assert.ErrorIs(t, err, app.ErrConflict)
	})

	t.Run("someone else's application", func(t *testing.T) {
		other := candidate
		other.UserID = candidate.UserID + 1000
		var second models.Application
		require.NoError(t, db.Where("candidate_id = ? AND id <> ?", candidate.UserID, application.ID).
			First(&second).Error)
		err := svc.Withdraw(second.ID, other)
		assert.ErrorIs(t, err, app.ErrForbidden)
	})
}
