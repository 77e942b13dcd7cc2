package ticket

import (
	"fmt"
	"testing"

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

func seedUser(t *testing.T, db *gorm.DB, email string, userType models.UserType) uint {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", FirstName: "T", LastName: "U", UserType: userType}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func openTicket(t *testing.T, svc *Service, userID uint) *models.CustomerTicket {
	t.Helper()
	ticket, err := svc.Create(CreateInput{
		UserID:      userID,
		Category:    models.TicketTechnical,
		Subject:     "Panel offline",
		Description: "The inverter shows error E3.",
	})
	require.NoError(t, err)
	return ticket
}

func TestCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "c@example.com", models.UserTypeCustomer)
	svc := NewService(db)

	ticket := openTicket(t, svc, userID)
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.Equal(t, models.PriorityMedium, ticket.Priority)
	assert.Nil(t, ticket.ResolvedAt)
}

func TestCreateValidatesEnums(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "c@example.com", models.UserTypeCustomer)
	svc := NewService(db)

	_, err := svc.Create(CreateInput{UserID: userID, Category: "Plumbing", Subject: "s", Description: "d"})
	assert.ErrorIs(t, err, entity.ErrInvalidEnumValue)

	_, err = svc.Create(CreateInput{UserID: userID, Category: models.TicketBilling, Subject: "s", Description: "d", Priority: "asap"})
	assert.ErrorIs(t, err, entity.ErrInvalidEnumValue)
}

func TestResolvedAtLifecycle(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "c@example.com", models.UserTypeCustomer)
	svc := NewService(db)
	ticket := openTicket(t, svc, userID)

	inProgress := models.TicketInProgress
	got, err := svc.Update(ticket.ID, UpdateInput{Status: &inProgress})
	require.NoError(t, err)
	assert.Nil(t, got.ResolvedAt)

	resolved := models.TicketResolved
	got, err = svc.Update(ticket.ID, UpdateInput{Status: &resolved})
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	firstResolved := *got.ResolvedAt

	// closing keeps the original resolution time
	closed := models.TicketClosed
	got, err = svc.Update(ticket.ID, UpdateInput{Status: &closed})
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	assert.True(t, got.ResolvedAt.Equal(firstResolved))

	// reopening clears it
	open := models.TicketOpen
	got, err = svc.Update(ticket.ID, UpdateInput{Status: &open})
	require.NoError(t, err)
	assert.Nil(t, got.ResolvedAt)
}

func TestAssignmentRequiresExistingUser(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "c@example.com", models.UserTypeCustomer)
	staffID := seedUser(t, db, "s@example.com", models.UserTypeServiceman)
	svc := NewService(db)
	ticket := openTicket(t, svc, userID)

	ghost := uint(9999)
	_, err := svc.Update(ticket.ID, UpdateInput{AssignedTo: &ghost})
	assert.ErrorIs(t, err, entity.ErrDanglingReference)

	got, err := svc.Update(ticket.ID, UpdateInput{AssignedTo: &staffID})
	require.NoError(t, err)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, staffID, *got.AssignedTo)
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com", models.UserTypeCustomer)
	bob := seedUser(t, db, "bob@example.com", models.UserTypeCustomer)
	svc := NewService(db)

	openTicket(t, svc, alice)
	openTicket(t, svc, alice)
	openTicket(t, svc, bob)

	tickets, err := svc.ListByUser(alice)
	require.NoError(t, err)
	assert.Len(t, tickets, 2)
}
