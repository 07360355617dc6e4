package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/config"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

type AccessClaims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed, time-bounded token carrying the user's
// id, email and role.
func (s *AuthService) GenerateToken(userID uuid.UUID, email, role string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := AccessClaims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.tokenTTL.Seconds()), nil
}

func (s *AuthService) ParseToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, portal_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, portal_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, portal_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, portal_errors.ErrUnauthorized
	}

	return *claims, nil
}

// HTTPStatus maps service errors to HTTP status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, portal_errors.ErrInvalidInput),
		errors.Is(err, portal_errors.ErrTooLarge),
		errors.Is(err, portal_errors.ErrUnsupportedType),
		errors.Is(err, portal_errors.ErrNoFile):
		return http.StatusBadRequest
	case errors.Is(err, portal_errors.ErrUnauthorized),
		errors.Is(err, portal_errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, portal_errors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, portal_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, portal_errors.ErrAlreadyExists),
		errors.Is(err, portal_errors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

// WithUserContext attaches the authenticated user id for downstream
// attribution.
func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
