package auth

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecovolt-backend/internal/models"
)

var (
	ErrDuplicateUser      = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrUnknownUser        = errors.New("token subject no longer exists")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	UserType  models.UserType
}

// Service owns registration, credential checks and token lifecycle.
type Service struct {
	db      *gorm.DB
	secret  string
	now     func() time.Time
	onLogin func(userID uint, at time.Time)
}

func NewService(db *gorm.DB, secret string) *Service {
	return &Service{db: db, secret: secret, now: time.Now}
}

// WithLoginHook registers a callback invoked after each successful
// authentication (used to stamp employee last_login).
func (s *Service) WithLoginHook(hook func(userID uint, at time.Time)) *Service {
	s.onLogin = hook
	return s
}

// WithClock overrides the time source, used by expiry tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Register(in RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if in.UserType == "" {
		in.UserType = models.UserTypeCustomer
	}
	if !in.UserType.Valid() {
		return nil, ErrInvalidCredentials
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		UserType:     in.UserType,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) Authenticate(email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := generateToken(s.secret, &user, s.now())
	if err != nil {
		return "", err
	}
	if s.onLogin != nil {
		s.onLogin(user.ID, s.now())
	}
	return token, nil
}

// Resolve maps a bearer token back to the user it was issued for.
func (s *Service) Resolve(tokenStr string) (*models.User, error) {
	claims, err := parseToken(s.secret, tokenStr, s.now())
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return &user, nil
}
