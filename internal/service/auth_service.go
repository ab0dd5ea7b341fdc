// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"feature-flag-be/internal/config"
	"feature-flag-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials deliberately hides whether the username or the
// password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authService authenticates the single management admin configured through
// the environment. There is no user table; operator credentials are
// provisioned out of band.
type authService struct {
	authConfig config.AuthConfig
}

func NewAuthService(authConfig config.AuthConfig) IAuthService {
	return &authService{authConfig: authConfig}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.authConfig.AdminPasswordHash == "" {
		return nil, errors.New("admin login is not configured")
	}

	if req.Username != s.authConfig.AdminUsername {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.authConfig.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":   "admin",
		"tenant_id": s.authConfig.AdminTenantId,
		"username":  req.Username,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User: dto.LoginUser{
			Id:       "admin",
			TenantId: s.authConfig.AdminTenantId,
			Username: req.Username,
		},
	}, nil
}
