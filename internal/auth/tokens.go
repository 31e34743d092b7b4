package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenIssuer issues and verifies the HS256 bearer tokens carried in the
// Authorization header. The token subject is the user id; expiry is the
// only other claim that matters.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: "devsocial",
		ttl:    ttl,
	}
}

// Issue creates a signed bearer token for the given user id
func (t *TokenIssuer) Issue(userID int64) (string, error) {
	now := time.Now().UTC()

	token, err := jwt.NewBuilder().
		Issuer(t.issuer).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		Expiration(now.Add(t.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, t.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// Verify validates the signature and expiry and returns the user id from
// the subject claim. Any failure (bad signature, expired, malformed
// subject) is returned as an error; callers decide whether that means 401
// or a silent fall back to the anonymous path.
func (t *TokenIssuer) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, t.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	userID, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject %q: %w", token.Subject(), err)
	}

	return userID, nil
}
