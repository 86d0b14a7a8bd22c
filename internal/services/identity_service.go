package services

import (
	"errors"
	"strings"

	"farmsync/internal/models"
	"farmsync/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type IdentityService interface {
	SignUp(email, password, fullName, phone string) (*models.Identity, error)
	Authenticate(email, password string) (*models.Identity, error)
	CreateWorkerIdentity(email, password, fullName string) (*models.Identity, error)
	GetByID(id string) (*models.Identity, error)
	UpdateUser(id, fullName, newPassword string) (*models.Identity, error)
	DeleteIdentity(id string) error
}

type identityService struct {
	identityRepo repository.IdentityRepository
}

func NewIdentityService(identityRepo repository.IdentityRepository) IdentityService {
	return &identityService{identityRepo: identityRepo}
}

func (s *identityService) SignUp(email, password, fullName, phone string) (*models.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		IsActive:     true,
	}
	if err := s.identityRepo.Create(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *identityService) Authenticate(email, password string) (*models.Identity, error) {
	identity, err := s.identityRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !identity.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return identity, nil
}

// CreateWorkerIdentity registers the synthesized account that backs a worker
// login. The email is a placeholder of the form username@<domain>, not a
// real mailbox.
func (s *identityService) CreateWorkerIdentity(email, password, fullName string) (*models.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		FullName:     fullName,
		IsActive:     true,
	}
	if err := s.identityRepo.Create(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *identityService) GetByID(id string) (*models.Identity, error) {
	return s.identityRepo.GetByID(id)
}

// UpdateUser changes the profile name and/or password. Empty arguments leave
// the corresponding field untouched.
func (s *identityService) UpdateUser(id, fullName, newPassword string) (*models.Identity, error) {
	identity, err := s.identityRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		identity.FullName = fullName
	}
	if newPassword != "" {
		if len(newPassword) < 6 {
			return nil, errors.New("password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		identity.PasswordHash = string(hash)
	}

	if err := s.identityRepo.Update(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *identityService) DeleteIdentity(id string) error {
	return s.identityRepo.Delete(id)
}
