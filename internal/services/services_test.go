package services

import (
	"path/filepath"
	"testing"

	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/database"
	"github.com/recruitwarx/portal/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a temporary sqlite database with the full schema and the
// demo dataset loaded.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test db")

	require.NoError(t, database.Migrate(db), "failed to run migrations")
	require.NoError(t, database.Seed(db), "failed to seed test db")
	return db
}

// emptyDB opens a temporary sqlite database with the schema only.
func emptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test db")
	require.NoError(t, database.Migrate(db), "failed to run migrations")
	return db
}

// sessionFor builds the auth context for a seeded user.
func sessionFor(t *testing.T, db *gorm.DB, username string) auth.Session {
	t.Helper()

	var user models.User
	require.NoError(t, db.Where("username = ?", username).First(&user).Error)
	return auth.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
