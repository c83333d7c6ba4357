package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Access tokens are long-lived by design so the web client
// can hold a session for a week without refreshing on every page load.
const (
	AccessTTL  = 7 * 24 * time.Hour
	RefreshTTL = 30 * 24 * time.Hour

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("token: wrong token type")

// Claims defines the JWT payload for both access and refresh tokens.
type Claims struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwtlib.RegisteredClaims
}

// Service signs and verifies tokens with the local HS256 secret. Only
// meaningful in local-auth deployments; remote-mode processes never mint
// tokens themselves.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// IssuePair mints a fresh access+refresh pair for a user.
func (s *Service) IssuePair(userID, name, email, role string) (access, refresh string, err error) {
	access, err = s.sign(userID, name, email, role, TypeAccess, AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.sign(userID, name, email, role, TypeRefresh, RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *Service) sign(userID, name, email, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:      name,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseAccess validates an access token's signature and expiry.
func (s *Service) ParseAccess(token string) (*Claims, error) {
	return s.parse(token, TypeAccess)
}

// ParseRefresh validates a refresh token's signature and expiry.
func (s *Service) ParseRefresh(token string) (*Claims, error) {
	return s.parse(token, TypeRefresh)
}

func (s *Service) parse(token, wantType string) (*Claims, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwtlib.ErrTokenInvalidClaims
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
