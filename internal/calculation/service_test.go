package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ecovolt-backend/internal/database"
	"ecovolt-backend/internal/entity"
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

func seed(t *testing.T, db *gorm.DB) (userID, propertyID uint) {
	t.Helper()
	user := models.User{Email: "owner@example.com", PasswordHash: "x", FirstName: "O", LastName: "W", UserType: models.UserTypeCustomer}
	require.NoError(t, db.Create(&user).Error)
	prop := models.Property{UserID: user.ID, AddressLine1: "1 Main St", City: "Leeds", Postcode: "LS1", PropertyType: "house"}
	require.NoError(t, db.Create(&prop).Error)
	return user.ID, prop.ID
}

func TestNegativeValuesRejected(t *testing.T) {
	db := newTestDB(t)
	userID, propID := seed(t, db)
	svc := NewService(db)

	_, err := svc.RecordEnergy(RecordInput{UserID: userID, PropertyID: propID, Value: -1})
	assert.ErrorIs(t, err, ErrNegativeValue)

	_, err = svc.RecordCarbon(RecordInput{UserID: userID, PropertyID: propID, Value: -0.01})
	assert.ErrorIs(t, err, ErrNegativeValue)

	// zero is a legal reading
	_, err = svc.RecordEnergy(RecordInput{UserID: userID, PropertyID: propID, Value: 0})
	assert.NoError(t, err)
}

func TestDanglingReferencesRejected(t *testing.T) {
	db := newTestDB(t)
	userID, propID := seed(t, db)
	svc := NewService(db)

	_, err := svc.RecordEnergy(RecordInput{UserID: 9999, PropertyID: propID, Value: 10})
	assert.ErrorIs(t, err, entity.ErrDanglingReference)

	_, err = svc.RecordCarbon(RecordInput{UserID: userID, PropertyID: 9999, Value: 10})
	assert.ErrorIs(t, err, entity.ErrDanglingReference)
}

func TestListByPropertyInDateOrder(t *testing.T) {
	db := newTestDB(t)
	userID, propID := seed(t, db)
	svc := NewService(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{2, 0, 1} {
		_, err := svc.RecordEnergy(RecordInput{
			UserID:     userID,
			PropertyID: propID,
			Value:      float64(offset),
			Date:       base.AddDate(0, 0, offset),
		})
		require.NoError(t, err)
	}

	out, err := svc.ListEnergyByProperty(propID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, float64(0), out[0].EnergyConsumption)
	assert.Equal(t, float64(1), out[1].EnergyConsumption)
	assert.Equal(t, float64(2), out[2].EnergyConsumption)
}

func TestRecordDefaultsDate(t *testing.T) {
	db := newTestDB(t)
	userID, propID := seed(t, db)
	svc := NewService(db)

	calc, err := svc.RecordCarbon(RecordInput{UserID: userID, PropertyID: propID, Value: 4.2})
	require.NoError(t, err)
	assert.False(t, calc.Date.IsZero())
}
