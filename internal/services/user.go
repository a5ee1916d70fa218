package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickta/backend/internal/models"
	"gorm.io/gorm"
)

// UserService owns user records.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// NewUser is one user to create.
type NewUser struct {
	Name     string `json:"name" binding:"required"`
	Utorid   string `json:"utorid"`
	UserRole string `json:"user_role"`
}

// Create registers a user with a fresh identifier.
func (s *UserService) Create(req *NewUser) (*models.User, error) {
	role := req.UserRole
	if role == "" {
		role = models.RoleStudent
	}
	user := models.User{
		UserID:   uuid.New().String(),
		Name:     req.Name,
		Utorid:   req.Utorid,
		UserRole: role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Get returns a user by identifier.
func (s *UserService) Get(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}

// ListAll returns every user.
func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// BatchAdd creates multiple users in one transaction.
func (s *UserService) BatchAdd(reqs []NewUser) ([]models.User, error) {
	created := make([]models.User, 0, len(reqs))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range reqs {
			role := reqs[i].UserRole
			if role == "" {
				role = models.RoleStudent
			}
			user := models.User{
				UserID:   uuid.New().String(),
				Name:     reqs[i].Name,
				Utorid:   reqs[i].Utorid,
				UserRole: role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			created = append(created, user)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch add users: %w", err)
	}
	return created, nil
}
