package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// StaffClaims is the session payload of an authenticated staff member. The
// club has no member accounts; the only credential is the shared staff
// password, so a token carries a role rather than a user id.
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const roleStaff = "staff"

type TokenManager interface {
	GenerateStaffToken() (string, error)
	// ValidateStaffToken returns the claims only for a live staff token.
	ValidateStaffToken(tokenString string) (*StaffClaims, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) TokenManager {
	if expiry <= 0 {
		expiry = 8 * time.Hour
	}
	return &tokenManager{secret: []byte(secret), expiry: expiry}
}

func (m *tokenManager) GenerateStaffToken() (string, error) {
	claims := StaffClaims{
		Role: roleStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   roleStaff,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "camclub-backend",
			Audience:  jwt.ClaimStrings{"admin-api"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateStaffToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid || claims.Role != roleStaff {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
