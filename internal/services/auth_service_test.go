package services

import (
	"testing"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Login("candidate", "candidate123")
		require.NoError(t, err)
		assert.Equal(t, models.RoleCandidate, user.Role)
		assert.NotNil(t, user.LastLogin, "login must stamp last_login")
	})

	t.Run("by email", func(t *testing.T) {
		user, err := svc.Login("recruiter@recruitwarx.com", "recruiter123")
		require.NoError(t, err)
		assert.Equal(t, "recruiter", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("candidate", "nope")
		assert.ErrorIs(t, err, app.ErrUnauthorized)

		_, err = svc.Login("candidate@recruitwarx.com", "nope")
		assert.ErrorIs(t, err, app.ErrUnauthorized, "email identifier must not bypass the password check")
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := svc.Login("ghost", "candidate123")
		assert.ErrorIs(t, err, app.ErrUnauthorized)
	})

	t.Run("inactive user", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).
			Where("username = ?", "candidate").
			Update("is_active", false).Error)
		_, err := svc.Login("candidate", "candidate123")
		assert.ErrorIs(t, err, app.ErrUnauthorized)
	})
}

func TestRegister(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	req := &dtos.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Username:  "ada",
		Role:      "candidate",
		Password:  "secret123",
	}

	user, err := svc.Register(req)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	// The new user can log in with the plaintext they registered with.
	_, err = svc.Login("ada", "secret123")
	require.NoError(t, err)

	t.Run("duplicate username", func(t *testing.T) {
		dup := *req
		dup.Email = "other@example.com"
		_, err := svc.Register(&dup)
		assert.ErrorIs(t, err, app.ErrConflict)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := *req
		dup.Username = "ada2"
		_, err := svc.Register(&dup)
		assert.ErrorIs(t, err, app.ErrConflict)
	})

	// Conflicts never leave a second row behind.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "ada").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
