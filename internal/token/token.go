// Package token issues and validates the signed bearer tokens that carry a
// user's identity between requests. Tokens are stateless: validity is
// determined solely by the signature and the embedded expiry, never by a
// server-side lookup.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tasktrack/internal/domain"
)

// Claims is the set of identity facts embedded in a token.
type Claims struct {
	jwt.RegisteredClaims
	Name      string `json:"name,omitempty"`
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// UserID returns the subject claim as a numeric user ID.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrTokenInvalid
	}
	return id, nil
}

// Issuer signs and verifies tokens with a symmetric HS256 secret. Its
// configuration is fixed at construction time.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewIssuer creates an Issuer. Issuer and audience are enforced during
// validation when non-empty.
func NewIssuer(secret []byte, issuer, audience string, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, issuer: issuer, audience: audience, ttl: ttl}
}

// Issue builds and signs a token for the given user, returning the compact
// token string and its expiry.
func (i *Issuer) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		Name:      user.Username,
		GivenName: user.FirstName,
		Surname:   user.LastName,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate verifies the signature, expiry, and configured issuer/audience.
// It returns domain.ErrTokenExpired for an expired token and
// domain.ErrTokenInvalid for everything else that fails verification; both
// mean "unauthenticated" at the boundary.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	if i.audience != "" {
		opts = append(opts, jwt.WithAudience(i.audience))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
