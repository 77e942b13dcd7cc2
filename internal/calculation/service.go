package calculation

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

var ErrNegativeValue = errors.New("calculation value must not be negative")

type RecordInput struct {
	UserID     uint
	PropertyID uint
	Value      float64
	Date       time.Time
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) validate(in *RecordInput) error {
	if in.Value < 0 {
		return ErrNegativeValue
	}
	var user models.User
	if err := entity.MustExist(s.db, &user, in.UserID); err != nil {
		return err
	}
	var prop models.Property
	if err := entity.MustExist(s.db, &prop, in.PropertyID); err != nil {
		return err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	return nil
}

func (s *Service) RecordEnergy(in RecordInput) (*models.EnergyCalculation, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	calc := models.EnergyCalculation{
		UserID:            in.UserID,
		PropertyID:        in.PropertyID,
		EnergyConsumption: in.Value,
		Date:              in.Date,
	}
	if err := s.db.Create(&calc).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

func (s *Service) RecordCarbon(in RecordInput) (*models.CarbonFootprint, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	calc := models.CarbonFootprint{
		UserID:         in.UserID,
		PropertyID:     in.PropertyID,
		CarbonReleased: in.Value,
		Date:           in.Date,
	}
	if err := s.db.Create(&calc).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

func (s *Service) ListEnergyByProperty(propertyID uint) ([]models.EnergyCalculation, error) {
	var out []models.EnergyCalculation
	if err := s.db.Where("property_id = ?", propertyID).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListCarbonByProperty(propertyID uint) ([]models.CarbonFootprint, error) {
	var out []models.CarbonFootprint
	if err := s.db.Where("property_id = ?", propertyID).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
