package property

import (
	"fmt"

	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreateInput struct {
	UserID       uint
	AddressLine1 string
	AddressLine2 string
	City         string
	Postcode     string
	PropertyType string
	RoofSize     *int
	RoofProfile  *models.RoofProfile
}

type UpdateInput struct {
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	Postcode     *string
	PropertyType *string
	RoofSize     *int
	RoofProfile  *models.RoofProfile
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(in CreateInput) (*models.Property, error) {
	var owner models.User
	if err := entity.MustExist(s.db, &owner, in.UserID); err != nil {
		return nil, err
	}
	if in.RoofProfile != nil && !in.RoofProfile.Valid() {
		return nil, fmt.Errorf("%w: roof_profile %q", entity.ErrInvalidEnumValue, *in.RoofProfile)
	}
	if in.AddressLine1 == "" || in.City == "" || in.Postcode == "" || in.PropertyType == "" {
		return nil, fmt.Errorf("address_line1, city, postcode and property_type are required")
	}

	prop := models.Property{
		UserID:       in.UserID,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		Postcode:     in.Postcode,
		PropertyType: in.PropertyType,
		RoofSize:     in.RoofSize,
		RoofProfile:  in.RoofProfile,
	}
	if err := s.db.Create(&prop).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

func (s *Service) Get(id uint) (*models.Property, error) {
	var prop models.Property
	if err := s.db.First(&prop, "id = ?", id).Error; err != nil {
		return nil, entity.AsNotFound(err)
	}
	return &prop, nil
}

func (s *Service) ListByOwner(userID uint) ([]models.Property, error) {
	var props []models.Property
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

func (s *Service) Update(id uint, in UpdateInput) (*models.Property, error) {
	prop, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.RoofProfile != nil && !in.RoofProfile.Valid() {
		return nil, fmt.Errorf("%w: roof_profile %q", entity.ErrInvalidEnumValue, *in.RoofProfile)
	}

	if in.AddressLine1 != nil {
		prop.AddressLine1 = *in.AddressLine1
	}
	if in.AddressLine2 != nil {
		prop.AddressLine2 = *in.AddressLine2
	}
	if in.City != nil {
		prop.City = *in.City
	}
	if in.Postcode != nil {
		prop.Postcode = *in.Postcode
	}
	if in.PropertyType != nil {
		prop.PropertyType = *in.PropertyType
	}
	if in.RoofSize != nil {
		prop.RoofSize = in.RoofSize
	}
	if in.RoofProfile != nil {
		prop.RoofProfile = in.RoofProfile
	}

	if err := s.db.Save(prop).Error; err != nil {
		return nil, err
	}
	return prop, nil
}

func (s *Service) Delete(id uint) (*models.Property, error) {
	prop, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Property{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return prop, nil
}
