package legal

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

func seedAdmin(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	user := models.User{Email: "admin@example.com", PasswordHash: "x", FirstName: "A", LastName: "D", UserType: models.UserTypeAdmin}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func createDoc(t *testing.T, svc *Service, createdBy uint) *models.LegalDocument {
	t.Helper()
	doc, err := svc.Create(CreateInput{
		DocumentType: models.LegalDocCompliance,
		Title:        "Installation compliance",
		Content:      "body",
		Version:      "1.0",
		CreatedBy:    createdBy,
	})
	require.NoError(t, err)
	return doc
}

func TestCreateValidatesType(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	_, err := svc.Create(CreateInput{
		DocumentType: "memo",
		Title:        "t",
		Content:      "c",
		Version:      "1",
		CreatedBy:    admin,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidEnumValue)
}

func TestCreateStartsActive(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	doc := createDoc(t, svc, admin)
	assert.Equal(t, models.LegalDocActive, doc.Status)
	assert.Nil(t, doc.LastModifiedBy)
}

func TestUpdateStampsModifier(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)
	doc := createDoc(t, svc, admin)

	title := "Installation compliance v2"
	version := "2.0"
	updated, err := svc.Update(doc.ID, UpdateInput{Title: &title, Version: &version, ModifiedBy: admin})
	require.NoError(t, err)
	assert.Equal(t, "Installation compliance v2", updated.Title)
	require.NotNil(t, updated.LastModifiedBy)
	assert.Equal(t, admin, *updated.LastModifiedBy)
	assert.NotNil(t, updated.LastModifiedAt)
}

func TestArchivedDocumentsAreImmutable(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)
	doc := createDoc(t, svc, admin)

	archived, err := svc.Archive(doc.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, models.LegalDocArchived, archived.Status)

	title := "after the fact"
	_, err = svc.Update(doc.ID, UpdateInput{Title: &title, ModifiedBy: admin})
	assert.ErrorIs(t, err, ErrArchivedImmutable)

	// double archive is also a mutation
	_, err = svc.Archive(doc.ID, admin)
	assert.ErrorIs(t, err, ErrArchivedImmutable)
}

func TestListFiltersByType(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db)
	svc := NewService(db)

	createDoc(t, svc, admin)
	_, err := svc.Create(CreateInput{
		DocumentType: models.LegalDocInvoice,
		Title:        "Invoice 42",
		Content:      "c",
		Version:      "1",
		CreatedBy:    admin,
	})
	require.NoError(t, err)

	docs, err := svc.List(models.LegalDocInvoice)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Invoice 42", docs[0].Title)

	_, err = svc.List("memo")
	assert.ErrorIs(t, err, entity.ErrInvalidEnumValue)
}
