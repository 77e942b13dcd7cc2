package consultation

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

// ErrInvalidTransition: only scheduled consultations may move to completed or
// cancelled.
var ErrInvalidTransition = errors.New("invalid consultation status transition")

type CreateInput struct {
	PropertyID       uint
	ConsultantID     uint
	ConsultationDate time.Time
	Notes            string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(in CreateInput) (*models.Consultation, error) {
	var prop models.Property
	if err := entity.MustExist(s.db, &prop, in.PropertyID); err != nil {
		return nil, err
	}
	var consultant models.User
	if err := entity.MustExist(s.db, &consultant, in.ConsultantID); err != nil {
		return nil, err
	}
	if in.ConsultationDate.IsZero() {
		return nil, fmt.Errorf("consultation_date is required")
	}

	cons := models.Consultation{
		PropertyID:       in.PropertyID,
		ConsultantID:     in.ConsultantID,
		ConsultationDate: in.ConsultationDate,
		Status:           models.ConsultationScheduled,
		Notes:            in.Notes,
	}
	if err := s.db.Create(&cons).Error; err != nil {
		return nil, err
	}
	return &cons, nil
}

func (s *Service) Get(id uint) (*models.Consultation, error) {
	var cons models.Consultation
	if err := s.db.First(&cons, "id = ?", id).Error; err != nil {
		return nil, entity.AsNotFound(err)
	}
	return &cons, nil
}

func (s *Service) ListByProperty(propertyID uint) ([]models.Consultation, error) {
	var out []models.Consultation
	if err := s.db.Where("property_id = ?", propertyID).Order("consultation_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus enforces the transition rules: scheduled->completed and
// scheduled->cancelled are the only legal moves.
func (s *Service) SetStatus(id uint, status models.ConsultationStatus, notes *string) (*models.Consultation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", entity.ErrInvalidEnumValue, status)
	}

	cons, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if cons.Status != models.ConsultationScheduled || status == models.ConsultationScheduled {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cons.Status, status)
	}

	cons.Status = status
	if notes != nil {
		cons.Notes = *notes
	}
	if err := s.db.Save(cons).Error; err != nil {
		return nil, err
	}
	return cons, nil
}
