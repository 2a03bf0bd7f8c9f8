package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	UserIDKey = "user_id"
	RolesKey  = "roles"

	RoleAdmin = "admin"
)

// Claims mirror the tokens issued by the account service: the user id is
// carried in "id", with "sub" accepted as a fallback.
type Claims struct {
	ID    string   `json:"id,omitempty"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Subject
}

func ParseToken(secret []byte, raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.UserID() == "" {
		return nil, errors.New("token has no user id")
	}
	return claims, nil
}

// IssueToken signs an HS256 token in the same shape ParseToken accepts.
func IssueToken(secret []byte, userID, email string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:    userID,
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// Auth rejects requests without a valid bearer token and exposes the caller
// as UserIDKey and RolesKey on the context.
func Auth(secret []byte, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := ParseToken(secret, raw)
		if err != nil {
			log.Debug("bearer token rejected",
				logger.String("request_id", c.GetString(RequestIDKey)),
				logger.String("reason", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID())
		c.Set(RolesKey, claims.Roles)
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		roles, _ := c.Get(RolesKey)
		granted, _ := roles.([]string)
		if !slices.Contains(granted, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func UserID(c *ginext.Context) string {
	return c.GetString(UserIDKey)
}
