package echoweb

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPage(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, _ := newTestApp(t, backend)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/login", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sign In")
	// demo credentials are prefilled
	assert.Contains(t, body, "admin@school.com")
	assert.Contains(t, body, "admin123")
}

func TestLoginPage_validSessionRedirects(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, store := newTestApp(t, backend)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(sessionCookie(t, store, testTeacher))
	rec := doRequest(app, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	// the session was probed against the backend before redirecting
	assert.Equal(t, 1, backend.hit(http.MethodGet, "/api/dashboard"))
}

func TestLogin(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, _ := newTestApp(t, backend)

	rec := doRequest(app, formRequest("/login", url.Values{
		"email":    {testTeacher.Email},
		"password": {"secret"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookie := responseCookie(rec, sessionCookieName)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_badCredentials(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, _ := newTestApp(t, backend)

	rec := doRequest(app, formRequest("/login", url.Values{
		"email":    {"wrong@school.com"},
		"password": {"nope"},
	}))

	// the form re-renders in place with the backend's message
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect email or password")
	assert.Nil(t, responseCookie(rec, sessionCookieName), "no session on failed login")
}

func TestLogin_validation(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, _ := newTestApp(t, backend)

	rec := doRequest(app, formRequest("/login", url.Values{
		"email":    {""},
		"password": {"secret"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "this field is required")
	// nothing reached the backend
	assert.Equal(t, 0, backend.hit(http.MethodPost, "/api/login"))
}

func TestLogout(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, store := newTestApp(t, backend)

	req := formRequest("/logout", nil)
	req.AddCookie(sessionCookie(t, store, testTeacher))
	rec := doRequest(app, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, 1, backend.hit(http.MethodPost, "/api/logout"))

	cookie := responseCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value, "session cookie must be cleared")
}

func TestRoot(t *testing.T) {
	backend := newFakeBackend()
	defer backend.Close()
	app, store := newTestApp(t, backend)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, store, testTeacher))
	rec = doRequest(app, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}
