package models

import "time"

type RoofProfile string

const (
	RoofSloped      RoofProfile = "Sloped"
	RoofSteepSloped RoofProfile = "Steep-Sloped"
	RoofFlat        RoofProfile = "Flat"
	RoofDome        RoofProfile = "Dome"
	RoofOther       RoofProfile = "Other"
)

func (p RoofProfile) Valid() bool {
	switch p {
	case RoofSloped, RoofSteepSloped, RoofFlat, RoofDome, RoofOther:
		return true
	}
	return false
}

type Property struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"index;not null" json:"user_id"`
	User         User         `json:"-"`
	AddressLine1 string       `gorm:"size:255;not null" json:"address_line1"`
	AddressLine2 string       `gorm:"size:255" json:"address_line2"`
	City         string       `gorm:"size:100;not null" json:"city"`
	Postcode     string       `gorm:"size:10;not null" json:"postcode"`
	PropertyType string       `gorm:"size:50;not null" json:"property_type"`
	RoofSize     *int         `json:"roof_size"`
	RoofProfile  *RoofProfile `gorm:"size:20" json:"roof_profile"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
