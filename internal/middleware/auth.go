package middleware

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthContextKey  = "publisher"
	ScopeContextKey = "scopes"

	// ScopeWrite allows publishing and deleting manifests
	ScopeWrite = "manifests:write"
)

var jwtSecret string

// Claims represents JWT claims
type Claims struct {
	Publisher string   `json:"publisher"`
	Scopes    []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// SetJWTSecret sets the JWT secret for the middleware
func SetJWTSecret(secret string) {
	jwtSecret = secret
}

// JWTAuth middleware validates JWT tokens
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := parseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(AuthContextKey, claims.Publisher)
		c.Set(ScopeContextKey, claims.Scopes)
		c.Next()
	}
}

// RequireScope rejects requests whose token does not carry scope. It must run after JWTAuth.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopes, _ := c.Get(ScopeContextKey)
		granted, _ := scopes.([]string)
		if !slices.Contains(granted, scope) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Missing scope " + scope})
			c.Abort()
			return
		}
		c.Next()
	}
}

func parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Publisher == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// GenerateToken generates a JWT token for a publisher
func GenerateToken(publisher string, scopes []string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Publisher: publisher,
		Scopes:    scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   publisher,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GetPublisher retrieves the authenticated publisher from the context
func GetPublisher(c *gin.Context) (string, bool) {
	publisher, exists := c.Get(AuthContextKey)
	if !exists {
		return "", false
	}

	s, ok := publisher.(string)
	return s, ok
}
