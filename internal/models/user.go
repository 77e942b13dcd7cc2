package models

import "time"

type UserType string

const (
	UserTypeCustomer   UserType = "customer"
	UserTypeAdmin      UserType = "admin"
	UserTypeServiceman UserType = "serviceman"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeCustomer, UserTypeAdmin, UserTypeServiceman:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	Phone        string    `gorm:"size:20" json:"phone"`
	UserType     UserType  `gorm:"size:20;not null" json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
