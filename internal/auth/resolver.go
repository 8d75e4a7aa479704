package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/planetdemo/planetdemo/internal/model"
)

// StubUserID is the identity the stub resolver hands out.
const StubUserID = "user"

// Resolver maps a bearer token to a user.
// Implementations report failure through the bool and never return errors:
// any problem resolving a token means there is no user.
type Resolver interface {
	Resolve(ctx context.Context, token string) (model.User, bool)
}

// StubResolver accepts every non-empty token as StubUserID.
// It performs no verification.
type StubResolver struct{}

// Resolve implements Resolver.
func (StubResolver) Resolve(_ context.Context, token string) (model.User, bool) {
	if token == "" {
		return model.User{}, false
	}
	return model.User{ID: StubUserID}, true
}

// JWTResolver verifies HS256-signed JWTs and uses the "sub" claim as the user ID.
type JWTResolver struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTResolver creates a JWTResolver for the given HMAC secret.
// leeway is the clock skew tolerated when checking exp/nbf/iat.
func NewJWTResolver(secret string, leeway time.Duration) *JWTResolver {
	return &JWTResolver{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(leeway),
		),
	}
}

// Resolve implements Resolver.
func (r *JWTResolver) Resolve(_ context.Context, token string) (model.User, bool) {
	if token == "" {
		return model.User{}, false
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := r.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return r.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return model.User{}, false
	}

	return model.User{ID: claims.Subject}, true
}
