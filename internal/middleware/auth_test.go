package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	SetJWTSecret("test-secret")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("vod-packager", []string{ScopeWrite}, 1*time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "vod-packager", claims.Publisher)
	assert.Equal(t, []string{ScopeWrite}, claims.Scopes)
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expired, err := GenerateToken("vod-packager", nil, -1*time.Minute)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Publisher: "intruder"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "Missing authorization header",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token format",
			token:          "InvalidToken",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired token",
			token:          "Bearer " + expired,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Unsigned token",
			token:          "Bearer " + unsigned,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			c.Request = req

			JWTAuth()(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestJWTAuthWithValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("live-encoder", []string{ScopeWrite}, 1*time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.PUT("/manifests/:name", JWTAuth(), RequireScope(ScopeWrite), func(c *gin.Context) {
		publisher, exists := GetPublisher(c)
		assert.True(t, exists)
		assert.Equal(t, "live-encoder", publisher)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/manifests/vod", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("read-only", []string{"manifests:read"}, 1*time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.DELETE("/manifests/:name", JWTAuth(), RequireScope(ScopeWrite), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/manifests/vod", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
