package services

import (
	"errors"
	"fmt"
	"strings"

	"recipe-api-backend/models"
	"recipe-api-backend/repositories"
	"recipe-api-backend/utils"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailTaken       = errors.New("a user with this email already exists")
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")
	// ErrInvalidCredentials is returned for every authentication failure so
	// a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
)

// UserService is the user directory: account creation, authentication and
// profile updates.
type UserService struct {
	users repositories.UserRepository
	jwt   *utils.JWTManager
}

func NewUserService(users repositories.UserRepository, jwt *utils.JWTManager) *UserService {
	return &UserService{users: users, jwt: jwt}
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	email := normalizeEmail(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < 5 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateSuperuser creates an account with the staff and superuser flags set.
func (s *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user, err := s.Create(CreateUserInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("set superuser flags: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials and returns a signed bearer token.
func (s *UserService) Authenticate(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(normalizeEmail(email))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) Update(id uint, patch models.UpdateMeRequest) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		if len(*patch.Password) < 5 {
			return nil, ErrPasswordTooShort
		}
		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// normalizeEmail lowercases the domain portion, leaving the local part as
// the user typed it.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
