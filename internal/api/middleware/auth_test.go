package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"whlin31/CarHub/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/guarded", RequireAuth(issuer), func(c *gin.Context) {
		userID, err := CurrentUser(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return engine
}

func TestRequireAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour, true)
	router := guardedRouter(issuer)

	token, err := issuer.Mint("user-123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		cookie   *http.Cookie
		wantCode int
		wantBody string
	}{
		{
			name:     "no cookie",
			cookie:   nil,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed token",
			cookie:   &http.Cookie{Name: auth.SessionCookie, Value: "garbage"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token resolves the identity",
			cookie:   &http.Cookie{Name: auth.SessionCookie, Value: token},
			wantCode: http.StatusOK,
			wantBody: "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestCurrentUserOutsideGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CurrentUser(c)
	assert.ErrorIs(t, err, ErrNoIdentity)
}
