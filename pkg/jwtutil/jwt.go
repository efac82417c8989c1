package jwtutil

import (
	"time"

	"catalog-service/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	signingKey = []byte("catalogservicesecretkey")
	expiration = 168 * time.Hour
)

// AdminClaims represents the JWT claims for the admin session
type AdminClaims struct {
	Username string `json:"user"`
	jwt.RegisteredClaims
}

// Initialize configures the signing key and token lifetime
func Initialize(cfg *config.JWTConfig) {
	signingKey = []byte(cfg.SigningKey)
	expiration = time.Duration(cfg.ExpirationHours) * time.Hour
}

// GenerateToken creates a signed admin token
func GenerateToken(username string) (string, error) {
	claims := AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ValidateToken validates and parses the JWT token
func ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
