package employee

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

// ErrManagerCycle: assigning this manager would make the reporting chain loop
// back on itself.
var ErrManagerCycle = errors.New("manager chain would form a cycle")

type CreateInput struct {
	UserID       uint
	Position     string
	ManagerID    *uint
	AccessRights string
	Status       models.EmployeeStatus
}

type UpdateInput struct {
	Position     *string
	ManagerID    *uint
	ClearManager bool
	AccessRights *string
	Status       *models.EmployeeStatus
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(in CreateInput) (*models.Employee, error) {
	var user models.User
	if err := entity.MustExist(s.db, &user, in.UserID); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = models.EmployeeActive
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: status %q", entity.ErrInvalidEnumValue, in.Status)
	}
	if in.Position == "" || in.AccessRights == "" {
		return nil, fmt.Errorf("position and access_rights are required")
	}
	if in.ManagerID != nil {
		var mgr models.Employee
		if err := entity.MustExist(s.db, &mgr, *in.ManagerID); err != nil {
			return nil, err
		}
	}

	emp := models.Employee{
		UserID:       in.UserID,
		Position:     in.Position,
		ManagerID:    in.ManagerID,
		AccessRights: in.AccessRights,
		Status:       in.Status,
	}
	if err := s.db.Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Service) Get(id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.First(&emp, "id = ?", id).Error; err != nil {
		return nil, entity.AsNotFound(err)
	}
	return &emp, nil
}

func (s *Service) List() ([]models.Employee, error) {
	var emps []models.Employee
	if err := s.db.Order("id ASC").Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (s *Service) Update(id uint, in UpdateInput) (*models.Employee, error) {
	emp, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: status %q", entity.ErrInvalidEnumValue, *in.Status)
		}
		emp.Status = *in.Status
	}
	if in.Position != nil {
		emp.Position = *in.Position
	}
	if in.AccessRights != nil {
		emp.AccessRights = *in.AccessRights
	}

	switch {
	case in.ClearManager:
		emp.ManagerID = nil
	case in.ManagerID != nil:
		if err := s.checkManagerChain(id, *in.ManagerID); err != nil {
			return nil, err
		}
		emp.ManagerID = in.ManagerID
	}

	if err := s.db.Save(emp).Error; err != nil {
		return nil, err
	}
	return emp, nil
}

// RecordLogin stamps last_login; called from the auth flow for staff accounts.
func (s *Service) RecordLogin(userID uint, at time.Time) error {
	return s.db.Model(&models.Employee{}).
		Where("user_id = ?", userID).
		Update("last_login", at).Error
}

// checkManagerChain walks upward from the proposed manager. Hitting the
// employee being updated means the assignment would close a loop.
func (s *Service) checkManagerChain(empID, managerID uint) error {
	if empID == managerID {
		return ErrManagerCycle
	}

	seen := map[uint]bool{empID: true}
	current := managerID
	for {
		if seen[current] {
			return ErrManagerCycle
		}
		seen[current] = true

		mgr := models.Employee{}
		if err := entity.MustExist(s.db, &mgr, current); err != nil {
			return err
		}
		if mgr.ManagerID == nil {
			return nil
		}
		current = *mgr.ManagerID
	}
}
