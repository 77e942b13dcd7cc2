package audit

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ecovolt-backend/internal/database"
	"ecovolt-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	user := models.User{Email: "admin@example.com", PasswordHash: "x", FirstName: "A", LastName: "D", UserType: models.UserTypeAdmin}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func TestRecordSerializesSnapshots(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	before := map[string]any{"city": "Leeds"}
	after := map[string]any{"city": "York"}
	require.NoError(t, svc.Record(RecordOptions{
		AdminID:       admin,
		ChangeType:    models.ChangeUpdate,
		TableAffected: "properties",
		RecordID:      7,
		Before:        before,
		After:         after,
	}))

	changes, err := svc.List("", 0)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	var got map[string]any
	require.NoError(t, json.Unmarshal(changes[0].OldValue, &got))
	assert.Equal(t, "Leeds", got["city"])
	require.NoError(t, json.Unmarshal(changes[0].NewValue, &got))
	assert.Equal(t, "York", got["city"])
	assert.False(t, changes[0].ChangedAt.IsZero())
}

func TestRecordMissingSnapshotsBecomeJSONNull(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	require.NoError(t, svc.Record(RecordOptions{
		AdminID:       admin,
		ChangeType:    models.ChangeDelete,
		TableAffected: "properties",
		RecordID:      7,
	}))

	changes, err := svc.List("", 0)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.JSONEq(t, "null", string(changes[0].OldValue))
	assert.JSONEq(t, "null", string(changes[0].NewValue))
}

func TestRecordRejectsUnknownChangeType(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	err := svc.Record(RecordOptions{
		AdminID:       admin,
		ChangeType:    "truncate",
		TableAffected: "properties",
		RecordID:      1,
	})
	assert.Error(t, err)
}

func TestListNewestFirstWithTableFilter(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	for i, table := range []string{"properties", "employees", "properties"} {
		require.NoError(t, svc.Record(RecordOptions{
			AdminID:       admin,
			ChangeType:    models.ChangeCreate,
			TableAffected: table,
			RecordID:      uint(i + 1),
		}))
	}

	all, err := svc.List("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint(3), all[0].RecordID)

	props, err := svc.List("properties", 0)
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, uint(3), props[0].RecordID)
	assert.Equal(t, uint(1), props[1].RecordID)
}
