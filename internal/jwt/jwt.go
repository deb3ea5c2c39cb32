package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingHeader = errors.New("authorization header missing")
	ErrBadHeader     = errors.New("invalid authorization header format")
	ErrNoUserID      = errors.New("user_id not found in token")
)

// Claims are the token claims the service relies on. The user id is the
// wallet provider's identity; sub is used when user_id is absent.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 session tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
	issuer    string
	leeway    time.Duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = key
	}
}

// WithExpiration sets the lifetime of generated tokens.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithIssuer stamps generated tokens with iss and rejects tokens from other issuers.
func WithIssuer(iss string) Opt {
	return func(j *JWT) {
		j.issuer = iss
	}
}

// WithLeeway tolerates clock skew between the wallet provider and this host.
func WithLeeway(d time.Duration) Opt {
	return func(j *JWT) {
		j.leeway = d
	}
}

func New(opts ...Opt) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for userID. Used by tests and local tooling; in
// production tokens come from the wallet provider.
func (j *JWT) Generate(ctx context.Context, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    j.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
}

// Validate reports whether the token is signed with our key and still valid.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses and verifies the token. UserID falls back to sub.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(j.leeway),
	}
	if j.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(j.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, parserOpts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrNoUserID
	}
	return claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrBadHeader
	}
	return token, nil
}
