package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

// Sessions issues and reads the signed session cookie. The cookie is
// the only session state: there is no server-side session table. The
// value is base64url(userID|issuedUnix) + "." + base64url(HMAC-SHA256),
// so any tampering invalidates the signature and the bearer is treated
// as anonymous.
type Sessions struct {
	secret []byte
}

// NewSessions creates a session authority signing with secret.
func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

// Establish binds the client to userID. Any prior cookie is expired
// first so residual state from a previous identity cannot leak into the
// new session.
func (s *Sessions) Establish(c echo.Context, userID int64) {
	s.Clear(c)

	payload := fmt.Sprintf("%d|%d", userID, time.Now().Unix())
	value := base64.RawURLEncoding.EncodeToString([]byte(payload)) +
		"." + base64.RawURLEncoding.EncodeToString(s.sign(payload))

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current returns the user id bound to the request, or false if the
// cookie is absent, malformed, or fails signature verification.
func (s *Sessions) Current(c echo.Context) (int64, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	encoded, encodedMAC, ok := strings.Cut(cookie.Value, ".")
	if !ok {
		return 0, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, false
	}
	mac, err := base64.RawURLEncoding.DecodeString(encodedMAC)
	if err != nil {
		return 0, false
	}
	if !hmac.Equal(mac, s.sign(string(payload))) {
		return 0, false
	}

	idPart, _, ok := strings.Cut(string(payload), "|")
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}

	return userID, true
}

// Clear removes the session binding (logout).
func (s *Sessions) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (s *Sessions) sign(payload string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
