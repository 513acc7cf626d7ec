package services

import (
	"testing"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCompletion(t *testing.T) {
	db := emptyDB(t)
	svc := NewProfileService(db)

	user := models.User{
		Username: "ada", Email: "ada@example.com", Password: "x",
		Role: models.RoleCandidate, FirstName: "Ada", LastName: "Lovelace",
	}
	require.NoError(t, db.Create(&user).Error)

	// Three of seven checklist fields are filled at creation.
	completion, err := svc.Completion(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 43, completion)

	// Filling fields one by one never lowers the percentage.
	prev := completion
	steps := []map[string]any{
		{"phone": "+1-555-1234"},
		{"location": "London"},
		{"bio": "Mathematician"},
		{"skills": "analysis, programming"},
	}
	for _, step := range steps {
		require.NoError(t, db.Model(&user).Updates(step).Error)
		completion, err = svc.Completion(user.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, completion, prev)
		prev = completion
	}

	// All seven populated is exactly 100.
	assert.Equal(t, 100, completion)

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.Completion(99999)
		assert.ErrorIs(t, err, app.ErrNotFound)
	})
}

func TestProfileGet(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)
	candidate := sessionFor(t, db, "candidate")

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", candidate.UserID).Updates(map[string]any{
		"work_experience": `[{"title":"Engineer","company":"Acme","start_date":"2020","end_date":"2023","description":"APIs"}]`,
		"education":       `[{"degree":"BSc","institution":"MIT","year":"2019"}]`,
	}).Error)

	profile, err := svc.Get(candidate.UserID)
	require.NoError(t, err)
	assert.Equal(t, "John", profile.FirstName)
	assert.Equal(t, "candidate", profile.Role)
	require.Len(t, profile.WorkExperience, 1)
	assert.Equal(t, "Acme", profile.WorkExperience[0].Company)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "BSc", profile.Education[0].Degree)

	t.Run("malformed blobs degrade to empty", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", candidate.UserID).
			Update("work_experience", "{not json").Error)
		profile, err := svc.Get(candidate.UserID)
		require.NoError(t, err)
		assert.Empty(t, profile.WorkExperience)
	})
}

func TestProfileUpdate(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)
	candidate := sessionFor(t, db, "candidate")

	err := svc.Update(candidate.UserID, &dtos.UpdateProfileRequest{
		FirstName: "Johnny", LastName: "Doe", Email: "johnny@recruitwarx.com",
		Phone: "+1-555-9999", Location: "Denver, CO", Bio: "Generalist",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, candidate.UserID).Error)
	assert.Equal(t, "Johnny", user.FirstName)
	assert.Equal(t, "johnny@recruitwarx.com", user.Email)
	assert.Equal(t, "Denver, CO", user.Location)

	t.Run("missing user", func(t *testing.T) {
		err := svc.Update(99999, &dtos.UpdateProfileRequest{
			FirstName: "x", LastName: "y", Email: "z@example.com",
		})
		assert.ErrorIs(t, err, app.ErrNotFound)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		err := svc.Update(candidate.UserID, &dtos.UpdateProfileRequest{
			FirstName: "Johnny", LastName: "Doe", Email: "recruiter@recruitwarx.com",
		})
		assert.ErrorIs(t, err, app.ErrConflict)
	})

	t.Run("keeping the own email is not a conflict", func(t *testing.T) {
		err := svc.Update(candidate.UserID, &dtos.UpdateProfileRequest{
			FirstName: "Johnny", LastName: "Doe", Email: "johnny@recruitwarx.com",
		})
		assert.NoError(t, err)
	})
}
