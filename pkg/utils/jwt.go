package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const serviceTokenIssuer = "hospital-reception-backend"

var (
	serviceSecret string
	serviceExpiry time.Duration
)

// InitJWT initializes the service token secret and default expiry
func InitJWT(secret string, expiry time.Duration) {
	serviceSecret = secret
	serviceExpiry = expiry
}

// Claims represents service token claims; Subject names the calling agent
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateServiceToken signs a token for subject; ttl <= 0 uses the configured expiry
func GenerateServiceToken(subject, role string, ttl time.Duration) (string, error) {
	return SignServiceToken(serviceSecret, subject, role, ttl)
}

// SignServiceToken signs a token with an explicit secret, for tooling outside the server
func SignServiceToken(secret, subject, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("service token secret is not configured")
	}
	if ttl <= 0 {
		ttl = serviceExpiry
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    serviceTokenIssuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateServiceToken validates and parses a service token
func ValidateServiceToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(serviceSecret), nil
	}, jwt.WithIssuer(serviceTokenIssuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
