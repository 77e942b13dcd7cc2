package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubscriptionActive       SubscriptionStatus = "active"
	SubscriptionUnsubscribed SubscriptionStatus = "unsubscribed"
)

func (s SubscriptionStatus) Valid() bool {
	return s == SubscriptionActive || s == SubscriptionUnsubscribed
}

type NewsletterSubscription struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	Email            string             `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Status           SubscriptionStatus `gorm:"size:20;not null" json:"status"`
	SubscriptionDate time.Time          `json:"subscription_date"`
	UnsubscribeDate  *time.Time         `json:"unsubscribe_date"`
	Preferences      datatypes.JSON     `json:"preferences"`
}
