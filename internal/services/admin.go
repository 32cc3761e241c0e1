package service

import (
	"context"
	"time"

	"github.com/atlasboutique/storefront-platform/internal/config"
	"github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error)
}

type adminService struct {
	security config.Security
	jwtKey   []byte
}

func NewAdminService(security config.Security) AdminService {
	return &adminService{security: security, jwtKey: []byte(security.JWTKey)}
}

// Login checks the configured admin credentials and issues the bearer token
// consumed by the auth middleware.
func (s *adminService) Login(_ context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error) {

	if req.Email != s.security.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(s.security.AdminPasswordHash), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError("Invalid email or password")
	}

	claims := &models.Claims{
		UserID: uuid.New(),
		Email:  req.Email,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to issue token").WithError(err)
	}

	return &models.AdminLoginResponse{Token: tokenString}, nil
}
