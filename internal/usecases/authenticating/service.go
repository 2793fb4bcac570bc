package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/invoicing-dashboard/infrastructure/repository"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/pkg/apiErrors"
	"github.com/vfg2006/invoicing-dashboard/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	GetUser(ctx context.Context, email string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo  repository.UserRepository
	secretKey string
	now       func() time.Time
}

func NewService(userRepo repository.UserRepository, secretKey string) *Service {
	return &Service{
		userRepo:  userRepo,
		secretKey: secretKey,
		now:       time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

// GetUser returns the user with email, password hash included, for the
// credentials check of the login flow.
func (s *Service) GetUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("operation", "get_user").Error("database error")
		return nil, &UserQueryError{Err: err}
	}

	return user, nil
}

// Login checks the credentials and returns a signed token valid for a day.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	user, err := s.GetUser(ctx, handleEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
		}
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "failed to sign token")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
