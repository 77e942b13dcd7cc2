package models

import "time"

// EnergyCalculation: kWh consumption recorded for a property.
type EnergyCalculation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	User              User      `json:"-"`
	PropertyID        uint      `gorm:"index;not null" json:"property_id"`
	Property          Property  `json:"-"`
	EnergyConsumption float64   `gorm:"not null" json:"energy_consumption"`
	Date              time.Time `gorm:"index;not null" json:"date"`
	CreatedAt         time.Time `json:"created_at"`
}

// CarbonFootprint: kg CO2 released, same shape as EnergyCalculation.
type CarbonFootprint struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	User           User      `json:"-"`
	PropertyID     uint      `gorm:"index;not null" json:"property_id"`
	Property       Property  `json:"-"`
	CarbonReleased float64   `gorm:"not null" json:"carbon_released"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}
