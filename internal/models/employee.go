package models

import "time"

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
	EmployeeOnLeave  EmployeeStatus = "on_leave"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeActive, EmployeeInactive, EmployeeOnLeave:
		return true
	}
	return false
}

type Employee struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User         User           `json:"-"`
	Position     string         `gorm:"size:100;not null" json:"position"`
	ManagerID    *uint          `gorm:"index" json:"manager_id"`
	Manager      *Employee      `gorm:"foreignKey:ManagerID" json:"-"`
	AccessRights string         `gorm:"size:255;not null" json:"access_rights"`
	Status       EmployeeStatus `gorm:"size:20;not null" json:"status"`
	LastLogin    *time.Time     `json:"last_login"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
