package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/models"
)

// newTestDB opens a fresh in-memory database per test. Max one open
// connection, otherwise the pool hands out connections pointing at empty
// memory databases.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = gdb.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Ingredient{},
		&models.Recipe{},
	)
	require.NoError(t, err)

	return gdb
}

func joinRowCount(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, gdb.Table("recipe_ingredients").Count(&count).Error)
	return count
}
