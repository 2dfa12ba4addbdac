package middleware

import (
	"errors"
	"net/http"
	"whlin31/CarHub/internal/api/response"
	"whlin31/CarHub/internal/auth"

	"github.com/gin-gonic/gin"
)

// userIDKey is private so handlers cannot plant an identity themselves; the
// only writer is RequireAuth after a successful token verification.
const userIDKey = "carhub.userID"

// ErrNoIdentity is returned by CurrentUser when a handler runs outside of
// RequireAuth. It signals a route-wiring bug, not a client error.
var ErrNoIdentity = errors.New("no authenticated identity in request context")

// RequireAuth is the session guard. It extracts the session cookie, verifies
// the token and attaches the user id to the request context. Requests with a
// missing, malformed, expired or forged token are rejected with 401 before
// any resource handler runs.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, err := issuer.Verify(token)
		if err != nil {
			response.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by RequireAuth.
func CurrentUser(c *gin.Context) (string, error) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", ErrNoIdentity
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", ErrNoIdentity
	}
	return userID, nil
}
