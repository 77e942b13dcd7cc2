package newsletter

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Subscribe creates an active subscription, or reactivates an unsubscribed
// one (clearing unsubscribe_date, which is only set while unsubscribed).
func (s *Service) Subscribe(email string, preferences datatypes.JSON) (*models.NewsletterSubscription, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}

	var existing models.NewsletterSubscription
	err := s.db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Status == models.SubscriptionActive {
			return nil, ErrAlreadySubscribed
		}
		existing.Status = models.SubscriptionActive
		existing.SubscriptionDate = s.now()
		existing.UnsubscribeDate = nil
		if len(preferences) > 0 {
			existing.Preferences = preferences
		}
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := models.NewsletterSubscription{
			Email:            email,
			Status:           models.SubscriptionActive,
			SubscriptionDate: s.now(),
			Preferences:      preferences,
		}
		if err := s.db.Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil

	default:
		return nil, err
	}
}

func (s *Service) Unsubscribe(email string) (*models.NewsletterSubscription, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var sub models.NewsletterSubscription
	if err := s.db.Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, entity.AsNotFound(err)
	}
	if sub.Status == models.SubscriptionUnsubscribed {
		return &sub, nil
	}

	now := s.now()
	sub.Status = models.SubscriptionUnsubscribed
	sub.UnsubscribeDate = &now
	if err := s.db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Service) List(status models.SubscriptionStatus) ([]models.NewsletterSubscription, error) {
	q := s.db.Order("id ASC")
	if status != "" {
		if !status.Valid() {
			return nil, entity.ErrInvalidEnumValue
		}
		q = q.Where("status = ?", status)
	}
	var subs []models.NewsletterSubscription
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
