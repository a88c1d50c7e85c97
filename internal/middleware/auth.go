package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jengzang/bodymap-backend-go/pkg/response"
)

const (
	userIDKey = "user_id"

	// AnonymousUser owns requests without a token when auth is optional
	AnonymousUser = "anonymous"

	tokenIssuer = "bodymap-backend"
)

// Claims are the JWT claims accepted by Auth
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// Owner returns the user id the token speaks for
func (c *Claims) Owner() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// IssueToken signs an HS256 token for userID valid for ttl
func IssueToken(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates tokenString and returns its claims
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Owner() == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// Auth resolves the requesting user from a bearer token.
// A present but invalid token is always rejected; a missing token is
// rejected only when required is set, otherwise the request runs as
// AnonymousUser.
func Auth(secret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				response.Error(c, http.StatusUnauthorized, "Missing bearer token", nil)
				return
			}
			c.Set(userIDKey, AnonymousUser)
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Malformed Authorization header", nil)
			return
		}

		claims, err := ParseToken(secret, tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", err)
			return
		}

		c.Set(userIDKey, claims.Owner())
		c.Next()
	}
}

// UserID returns the user resolved by Auth, or AnonymousUser
func UserID(c *gin.Context) string {
	if id := c.GetString(userIDKey); id != "" {
		return id
	}
	return AnonymousUser
}
