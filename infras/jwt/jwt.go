// Package jwt inspects access tokens on the client side. The device holds no
// signing keys, so tokens are decoded without verification; only the remote
// validate-token endpoint is authoritative. Local expiry checks exist to skip
// a round trip for tokens that are certainly dead.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"innsync/shared/timezone"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoExpiry     = errors.New("token has no expiry claim")
)

// Claims is the subset of the server's access-token claims the client reads.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Inspector decodes tokens without signature verification.
type Inspector interface {
	Claims(tokenString string) (*Claims, error)
	Expired(tokenString string) bool
}

type inspectorImpl struct {
	parser *jwt.Parser
}

func New() Inspector {
	return &inspectorImpl{
		parser: jwt.NewParser(jwt.WithoutClaimsValidation()),
	}
}

// Claims decodes the token payload. The signature is NOT checked.
func (i *inspectorImpl) Claims(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, _, err := i.parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	return claims, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens that
// cannot be decoded or carry no expiry are treated as expired so the caller
// falls through to the remote validation.
func (i *inspectorImpl) Expired(tokenString string) bool {
	claims, err := i.Claims(tokenString)
	if err != nil {
		return true
	}

	remaining, err := ExpiresIn(claims)
	if err != nil {
		return true
	}

	return remaining <= 0
}

// ExpiresIn returns the remaining lifetime of the token, negative when the
// token is already past its exp claim.
func ExpiresIn(claims *Claims) (time.Duration, error) {
	if claims == nil || claims.ExpiresAt == nil {
		return 0, ErrNoExpiry
	}

	return claims.ExpiresAt.Time.Sub(timezone.Now()), nil
}
