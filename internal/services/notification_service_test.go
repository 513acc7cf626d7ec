package services

import (
	"testing"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	candidate := sessionFor(t, db, "candidate")
	recruiter := sessionFor(t, db, "recruiter")

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Notify(candidate.UserID, models.NotificationTypeSystem,
			"Welcome", "Your profile is live", "/profile"))
	}

	list, err := svc.List(candidate.UserID)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	count, err := svc.UnreadCount(candidate.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	t.Run("mark one", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(list[0].ID, candidate.UserID))
		count, err := svc.UnreadCount(candidate.UserID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("foreign notification", func(t *testing.T) {
		err := svc.MarkRead(list[1].ID, recruiter.UserID)
		assert.ErrorIs(t, err, app.ErrForbidden)
	})

	t.Run("mark all", func(t *testing.T) {
		require.NoError(t, svc.MarkAllRead(candidate.UserID))
		count, err := svc.UnreadCount(candidate.UserID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}
