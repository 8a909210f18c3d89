package services

import (
	"context"
	"errors"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	// ErrInvalidCredentials e-posta ya da şifre hatalı; hangisi olduğu
	// dışarıya söylenmez.
	ErrInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
)

// IAuthService panel girişi için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewUserRepository()}
}

// NewAuthServiceWithRepo test ve özel kurulumlar için.
func NewAuthServiceWithRepo(repo repositories.IUserRepository) IAuthService {
	return &AuthService{repo: repo}
}

// Authenticate e-posta/şifre doğrulaması yapar.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.SLog.Warnf("Başarısız giriş denemesi: %s", email)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID oturumdaki kullanıcıyı doğrulamak için kullanılır.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
