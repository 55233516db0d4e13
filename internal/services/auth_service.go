package services

import (
	"errors"
	"fmt"

	"github.com/Dexter3110/bole-to-connect/internal/dto"
	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/Dexter3110/bole-to-connect/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repository.NewUserRepository(db)}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.UserResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrFieldsRequired
	}

	existing, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleEmployee,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Login verifies credentials. Unknown email and wrong password fail the
// same way so the response does not reveal which accounts exist.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrFieldsRequired
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// LookupByEmail resolves an email to a user id.
func (s *AuthService) LookupByEmail(email string) (uuid.UUID, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserNotFound
	}
	return user.ID, nil
}
