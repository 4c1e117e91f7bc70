package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Principal is the identity asserted by a verified bearer token.
type Principal struct {
	Subject string
	Email   string
	Role    string
}

// Verifier validates a raw bearer token and returns the caller identity.
// Implementations may check signatures locally or call out to an identity
// provider; handlers only depend on this seam.
type Verifier interface {
	Verify(tokenString string) (*Principal, error)
}

// Claims represents the JWT claims carried by access tokens
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 tokens
type Service struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewService creates a token service. Issuer and audience are only
// enforced when non-empty.
func NewService(secret, issuer, audience string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), issuer: issuer, audience: audience, ttl: ttl}
}

// Issue signs a token for the given identity
func (s *Service) Issue(subject, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates and parses a bearer token
func (s *Service) Verify(tokenString string) (*Principal, error) {
	opts := []jwt.ParserOption{}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}

	return &Principal{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}, nil
}
