package ticket

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreateInput struct {
	UserID      uint
	Category    models.TicketCategory
	Subject     string
	Description string
	Priority    models.TicketPriority
}

type UpdateInput struct {
	AssignedTo *uint
	Status     *models.TicketStatus
	Priority   *models.TicketPriority
}

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func (s *Service) Create(in CreateInput) (*models.CustomerTicket, error) {
	var user models.User
	if err := entity.MustExist(s.db, &user, in.UserID); err != nil {
		return nil, err
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: category %q", entity.ErrInvalidEnumValue, in.Category)
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority %q", entity.ErrInvalidEnumValue, in.Priority)
	}
	if in.Subject == "" || in.Description == "" {
		return nil, fmt.Errorf("subject and description are required")
	}

	t := models.CustomerTicket{
		UserID:      in.UserID,
		Category:    in.Category,
		Subject:     in.Subject,
		Description: in.Description,
		Status:      models.TicketOpen,
		Priority:    in.Priority,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) Get(id uint) (*models.CustomerTicket, error) {
	var t models.CustomerTicket
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, entity.AsNotFound(err)
	}
	return &t, nil
}

func (s *Service) ListByUser(userID uint) ([]models.CustomerTicket, error) {
	var out []models.CustomerTicket
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Update moves a ticket through its workflow. resolved_at is managed here:
// stamped when the ticket enters resolved or closed, cleared when it reopens.
func (s *Service) Update(id uint, in UpdateInput) (*models.CustomerTicket, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.AssignedTo != nil {
		var assignee models.User
		if err := entity.MustExist(s.db, &assignee, *in.AssignedTo); err != nil {
			return nil, err
		}
		t.AssignedTo = in.AssignedTo
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, fmt.Errorf("%w: priority %q", entity.ErrInvalidEnumValue, *in.Priority)
		}
		t.Priority = *in.Priority
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: status %q", entity.ErrInvalidEnumValue, *in.Status)
		}
		t.Status = *in.Status
		switch *in.Status {
		case models.TicketResolved, models.TicketClosed:
			if t.ResolvedAt == nil {
				now := s.now()
				t.ResolvedAt = &now
			}
		default:
			t.ResolvedAt = nil
		}
	}

	if err := s.db.Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}
