package database

import (
	"path/filepath"
	"testing"

	"neuroscan/config"
	"neuroscan/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDb points the global instance at a throwaway sqlite file.
func setupTestDb(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{SaltRound: 4}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Prediction{}))

	Database = DbInstance{Db: db}
}

func countUsers(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, Database.Db.Model(&models.User{}).Count(&count).Error)
	return count
}
