package models

import "time"

type ConsultationStatus string

const (
	ConsultationScheduled ConsultationStatus = "scheduled"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationCancelled ConsultationStatus = "cancelled"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationScheduled, ConsultationCompleted, ConsultationCancelled:
		return true
	}
	return false
}

type Consultation struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	PropertyID       uint               `gorm:"index;not null" json:"property_id"`
	Property         Property           `json:"-"`
	ConsultantID     uint               `gorm:"index;not null" json:"consultant_id"`
	Consultant       User               `gorm:"foreignKey:ConsultantID" json:"-"`
	ConsultationDate time.Time          `gorm:"not null" json:"consultation_date"`
	Status           ConsultationStatus `gorm:"size:20;not null" json:"status"`
	Notes            string             `gorm:"size:2000" json:"notes"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
