package cookie

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccessTokenCookieName = "access_token"
	SessionCookieName     = "checkout_session"

	// Checkout sessions only need to survive the auth redirect plus some
	// dithering; a day is generous.
	sessionMaxAgeSeconds = 24 * 60 * 60
)

// EnsureSession returns the checkout session id carried by the request, or
// mints a new one and sets the cookie. The session id keys the
// pending-selection mailbox slot across the login redirect.
func EnsureSession(c *gin.Context) uuid.UUID {
	if raw, err := c.Cookie(SessionCookieName); err == nil {
		if id, parseErr := uuid.Parse(raw); parseErr == nil {
			return id
		}
	}

	id := uuid.New()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		id.String(),
		sessionMaxAgeSeconds,
		"/",
		"",
		false,
		true, // HttpOnly
	)
	return id
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
