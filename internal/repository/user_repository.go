package repository

import (
	"errors"
	"fmt"

	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail returns nil when no user has the given email.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// FindByID returns ErrNotFound when the id does not exist.
func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// RoleByID looks up a user's role. An unknown id yields the employee
// default, which never belongs to the privileged set, so privileged
// operations deny by default rather than erroring.
func (r *UserRepository) RoleByID(id uuid.UUID) (string, error) {
	var user models.User
	err := r.db.Select("role").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoleEmployee, nil
	}
	if err != nil {
		return "", fmt.Errorf("query user role: %w", err)
	}
	if user.Role == "" {
		return models.RoleEmployee, nil
	}
	return user.Role, nil
}
