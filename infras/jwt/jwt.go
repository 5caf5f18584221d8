// Package jwt issues and verifies the HS256 bearer tokens staff profiles sign in with.
// Access and refresh tokens use separate secrets, so one can never stand in for the other.
package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"dockhub/config"
	"dockhub/shared/timezone"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingHeader = errors.New("authorization header is required")
	ErrInvalidHeader = errors.New("authorization header must start with 'Bearer '")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"

	scheme = "Bearer"
	leeway = 30 * time.Second
)

// Claims identifies a staff profile. Subject carries the profile id.
type Claims struct {
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(profileID, email, role string) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
}

type key struct {
	secret []byte
	ttl    time.Duration
}

type Service struct {
	issuer string
	keys   map[TokenType]key
	method jwt.SigningMethod
}

func New(cfg *config.Config) JWT {
	return &Service{
		issuer: cfg.App.Name,
		method: jwt.SigningMethodHS256,
		keys: map[TokenType]key{
			AccessToken:  {secret: []byte(cfg.JWT.AccessSecret), ttl: minutes(cfg.JWT.AccessExpireMin)},
			RefreshToken: {secret: []byte(cfg.JWT.RefreshSecret), ttl: minutes(cfg.JWT.RefreshExpireMin)},
		},
	}
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func (s *Service) key(tokenType TokenType) (key, error) {
	k, ok := s.keys[tokenType]
	if !ok {
		return key{}, fmt.Errorf("unknown token type: %s", tokenType)
	}

	return k, nil
}

// GenerateTokenPair issues an access and a refresh token for the profile, both stamped with the same issue time.
func (s *Service) GenerateTokenPair(profileID, email, role string) (*TokenPair, error) {
	now := timezone.Now()
	pair := &TokenPair{TokenType: scheme}

	for tokenType, dst := range map[TokenType]*string{AccessToken: &pair.AccessToken, RefreshToken: &pair.RefreshToken} {
		signed, err := s.sign(Claims{Email: email, Role: role, Type: tokenType}, profileID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s token: %w", tokenType, err)
		}

		*dst = signed
	}

	pair.ExpiresIn = int64(s.keys[AccessToken].ttl / time.Second)

	return pair, nil
}

func (s *Service) sign(claims Claims, subject string, issuedAt time.Time) (string, error) {
	k, err := s.key(claims.Type)
	if err != nil {
		return "", err
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(k.ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(k.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses the token and checks it was issued by this service as tokenType.
func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	k, err := s.key(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) { return k.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(timezone.Now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType, claims.Subject == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the bearer token of an Authorization header. The scheme is matched case-insensitively.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	prefix, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(prefix, scheme) || strings.TrimSpace(token) == "" {
		return "", ErrInvalidHeader
	}

	return strings.TrimSpace(token), nil
}
