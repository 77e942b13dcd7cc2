package auth

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
	"ecovolt-backend/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

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

func registerAlice(t *testing.T, svc *Service) *models.User {
	t.Helper()
	user, err := svc.Register(RegisterInput{
		Email:     "alice@example.com",
		Password:  "pw1",
		FirstName: "Alice",
		LastName:  "Archer",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterDuplicate(t *testing.T) {
	svc := NewService(newTestDB(t), testSecret)

	registerAlice(t, svc)

	_, err := svc.Register(RegisterInput{Email: "alice@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// same address, different case
	_, err = svc.Register(RegisterInput{Email: "ALICE@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc := NewService(newTestDB(t), testSecret)
	user := registerAlice(t, svc)
	assert.Equal(t, models.UserTypeCustomer, user.UserType)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := NewService(newTestDB(t), testSecret)
	registerAlice(t, svc)

	_, err := svc.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveRoundTrip(t *testing.T) {
	svc := NewService(newTestDB(t), testSecret)
	registered := registerAlice(t, svc)

	token, err := svc.Authenticate("alice@example.com", "pw1")
	require.NoError(t, err)

	user, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestResolveExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := NewService(newTestDB(t), testSecret).WithClock(func() time.Time { return clock })
	registerAlice(t, svc)

	token, err := svc.Authenticate("alice@example.com", "pw1")
	require.NoError(t, err)

	// still valid just inside the 24h window
	clock = issuedAt.Add(TokenTTL - time.Minute)
	_, err = svc.Resolve(token)
	assert.NoError(t, err)

	clock = issuedAt.Add(TokenTTL + time.Minute)
	_, err = svc.Resolve(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestResolveMalformedToken(t *testing.T) {
	svc := NewService(newTestDB(t), testSecret)
	registerAlice(t, svc)

	_, err := svc.Resolve("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResolveWrongSecret(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, testSecret)
	registerAlice(t, svc)

	token, err := svc.Authenticate("alice@example.com", "pw1")
	require.NoError(t, err)

	other := NewService(db, "ffffffffffffffffffffffffffffffff")
	_, err = other.Resolve(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResolveUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, testSecret)
	user := registerAlice(t, svc)

	token, err := svc.Authenticate("alice@example.com", "pw1")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	_, err = svc.Resolve(token)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestLoginHookFires(t *testing.T) {
	var gotID uint
	svc := NewService(newTestDB(t), testSecret).
		WithLoginHook(func(userID uint, _ time.Time) { gotID = userID })
	user := registerAlice(t, svc)

	_, err := svc.Authenticate("alice@example.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
}

func TestPasswordsAreNotStoredPlaintext(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, testSecret)
	registerAlice(t, svc)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "alice@example.com").Error)
	assert.NotEqual(t, "pw1", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}
