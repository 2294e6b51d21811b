package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openEmptyDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	return gdb
}

func TestMigrate(t *testing.T) {
	gdb := openEmptyDB(t)
	defer CleanupTestDB(gdb)

	require.NoError(t, Migrate(gdb))

	// Every migration is recorded by name.
	var names []string
	require.NoError(t, gdb.Table("migrations").Order("id").Pluck("name", &names).Error)
	assert.Len(t, names, len(migrations))
	assert.Equal(t, "001_initial_schema", names[0])
	assert.Equal(t, "009_add_product_id_to_posts", names[len(names)-1])

	// Catalog seed data is in place.
	var productCount, musicCount int64
	require.NoError(t, gdb.Table("products").Count(&productCount).Error)
	require.NoError(t, gdb.Table("music").Count(&musicCount).Error)
	assert.Equal(t, int64(5), productCount)
	assert.Equal(t, int64(2), musicCount)
}

func TestMigrateIsIdempotent(t *testing.T) {
	gdb := openEmptyDB(t)
	defer CleanupTestDB(gdb)

	require.NoError(t, Migrate(gdb))
	require.NoError(t, Migrate(gdb))

	var migrationCount, productCount int64
	require.NoError(t, gdb.Table("migrations").Count(&migrationCount).Error)
	require.NoError(t, gdb.Table("products").Count(&productCount).Error)
	assert.Equal(t, int64(len(migrations)), migrationCount)
	assert.Equal(t, int64(5), productCount)
}

func TestMigrateEnforcesRatingRange(t *testing.T) {
	gdb := openEmptyDB(t)
	defer CleanupTestDB(gdb)

	require.NoError(t, Migrate(gdb))

	require.NoError(t, gdb.Exec(
		"INSERT INTO users (email, password, name) VALUES (?, ?, ?)",
		"test@example.com", "hash", "Тест",
	).Error)

	err := gdb.Exec(
		"INSERT INTO reviews (user_id, product_id, rating, text) VALUES (1, 1, 6, 'плохо')",
	).Error
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK")
}
