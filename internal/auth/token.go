package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "jwt"

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, wrong signing method, malformed payload or past expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer mints and verifies the signed session tokens. Tokens are
// stateless: nothing is stored server-side, revocation happens by clearing
// the client cookie.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewTokenIssuer creates a TokenIssuer. Cookies carry the Secure flag unless
// the server runs in local development.
func NewTokenIssuer(secret string, ttl time.Duration, development bool) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		secure: !development,
	}
}

// Mint creates a signed session token for the given user id.
func (t *TokenIssuer) Mint(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	})
	return token.SignedString(t.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// user id.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// SetSessionCookie mints a token for userID and attaches it to the response
// as an HttpOnly, SameSite=Strict cookie.
func (t *TokenIssuer) SetSessionCookie(c *gin.Context, userID string) error {
	token, err := t.Mint(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, token, int(t.ttl.Seconds()), "/", "", t.secure, true)
	return nil
}

// ClearSessionCookie removes the session cookie. Clearing an absent cookie is
// a no-op, which makes logout idempotent.
func (t *TokenIssuer) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", t.secure, true)
}
