package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity embedded in a session token.
type Claims struct {
	UID   int64  // User identifier
	Email string // User email at issuance time
}

// JWT issues and verifies signed session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime
}

// New creates a new JWT instance.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed HS256 token carrying uid and email,
// expiring after the configured lifetime.
func (j *JWT) Generate(ctx context.Context, uid int64, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":   uid,
		"email": email,
		"exp":   now.Add(j.Exp).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns the embedded claims.
// Signature and expiry are both checked; any failure returns an error.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, errors.New("uid not found in token")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("email not found in token")
	}

	return &Claims{UID: int64(uid), Email: email}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
