package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	adminRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/adminuser"
	"github.com/santilopez19/TurneroPremium/internal/service/auth/models"
)

// Credentials пара email/пароль из конфигурации
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) isSet() bool {
	return c.Email != "" && c.Password != ""
}

// Service вход администратора и проверка токенов
type Service struct {
	adminRepo AdminRepository
	issuer    TokenIssuer
	override  Credentials // проверяется до поиска в БД
	logger    Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(adminRepo AdminRepository, issuer TokenIssuer, override Credentials, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		issuer:    issuer,
		override:  override,
		logger:    logger,
	}
}

// Login проверяет учетные данные и выдает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	if !s.matchesOverride(email, req.Password) {
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, adminRepo.ErrAdminNotFound) {
				s.logger.Warn("Login: unknown email=%s", email)
				return nil, ErrInvalidCredentials
			}
			s.logger.Error("Login: repository error: %v", err)
			return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			s.logger.Warn("Login: wrong password for email=%s", email)
			return nil, ErrInvalidCredentials
		}
	}

	token, expiresAt, err := s.issuer.Issue(email, domain.RoleAdmin)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: token issued for email=%s", email)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify проверяет токен из заголовка Authorization
func (s *Service) Verify(token string) (*models.Principal, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.Role != domain.RoleAdmin {
		return nil, ErrUnauthorized
	}
	return &models.Principal{Email: claims.Sub, Role: claims.Role}, nil
}

// EnsureAdmin создает первого администратора, если таблица пуста
func (s *Service) EnsureAdmin(ctx context.Context, bootstrap Credentials) error {
	if !bootstrap.isSet() {
		return nil
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - count admins: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrap.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - hash password: %v", ErrInternal, err)
	}

	admin, err := s.adminRepo.Create(ctx, &domain.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(bootstrap.Email)),
		PasswordHash: string(hash),
	})
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - create admin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAdmin: created initial admin email=%s", admin.Email)
	return nil
}

func (s *Service) matchesOverride(email, password string) bool {
	if !s.override.isSet() {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(s.override.Email))) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.override.Password)) == 1
	return emailOK && passwordOK
}
