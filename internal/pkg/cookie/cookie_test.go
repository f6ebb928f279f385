//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-checkout/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	return c, w
}

func TestEnsureSession_MintsWhenAbsent(t *testing.T) {
	c, w := newTestContext(t)

	id := cookie.EnsureSession(c)
	assert.NotEqual(t, uuid.Nil, id)

	var set *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookie.SessionCookieName {
			set = ck
		}
	}
	require.NotNil(t, set)
	assert.Equal(t, id.String(), set.Value)
	assert.True(t, set.HttpOnly)
}

func TestEnsureSession_ReusesExisting(t *testing.T) {
	c, w := newTestContext(t)
	existing := uuid.New()
	c.Request.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: existing.String()})

	id := cookie.EnsureSession(c)
	assert.Equal(t, existing, id)
	assert.Empty(t, w.Result().Cookies())
}

func TestEnsureSession_ReplacesGarbage(t *testing.T) {
	c, w := newTestContext(t)
	c.Request.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "not-a-uuid"})

	id := cookie.EnsureSession(c)
	assert.NotEqual(t, uuid.Nil, id)
	require.Len(t, w.Result().Cookies(), 1)
	assert.Equal(t, id.String(), w.Result().Cookies()[0].Value)
}

func TestGetAccessToken(t *testing.T) {
	c, _ := newTestContext(t)
	assert.Empty(t, cookie.GetAccessToken(c))

	c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "tok"})
	assert.Equal(t, "tok", cookie.GetAccessToken(c))
}
