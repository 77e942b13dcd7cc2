package models

import "time"

type TicketCategory string

const (
	TicketTechnical    TicketCategory = "Technical"
	TicketBilling      TicketCategory = "Billing"
	TicketInstallation TicketCategory = "Installation"
)

func (c TicketCategory) Valid() bool {
	switch c {
	case TicketTechnical, TicketBilling, TicketInstallation:
		return true
	}
	return false
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type CustomerTicket struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	User        User           `json:"-"`
	AssignedTo  *uint          `gorm:"index" json:"assigned_to"`
	Assignee    *User          `gorm:"foreignKey:AssignedTo" json:"-"`
	Category    TicketCategory `gorm:"size:20;not null" json:"category"`
	Subject     string         `gorm:"size:255;not null" json:"subject"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Status      TicketStatus   `gorm:"size:20;not null" json:"status"`
	Priority    TicketPriority `gorm:"size:10;not null" json:"priority"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ResolvedAt  *time.Time     `json:"resolved_at"`
}
