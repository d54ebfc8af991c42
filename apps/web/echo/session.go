package echoweb

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/school"
)

const (
	sessionCookieName = "shule_session"
	stashCookiePrefix = "shule_stash_"
)

// sessionClaims is the signed cookie payload: the backend API token plus the
// user profile, so that page loads need no backend round trip to know who is
// signed in.
type sessionClaims struct {
	jwt.StandardClaims
	APIToken string `json:"api_token,omitempty"`
	UserID   int    `json:"user_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// sessionStore keeps the session client-side in a JWT-signed cookie.
// Token and user are always written and removed together.
type sessionStore struct {
	appName    string
	secret     []byte
	expiration time.Duration
}

func newSessionStore(conf *core.Config) *sessionStore {
	return &sessionStore{
		appName:    conf.AppName,
		secret:     []byte(conf.SecretKey),
		expiration: conf.Server.SessionExpirationDelta,
	}
}

// sign serializes the session into a signed cookie value.
func (st *sessionStore) sign(sess school.Session, now time.Time) (string, error) {
	claims := &sessionClaims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    st.appName,
			Subject:   strconv.Itoa(sess.User.ID),
			ExpiresAt: now.Add(st.expiration).Unix(),
			IssuedAt:  now.Unix(),
		},
		APIToken: sess.Token,
		UserID:   sess.User.ID,
		Name:     sess.User.Name,
		Email:    sess.User.Email,
		Role:     sess.User.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(st.secret)
	return token, errors.Wrap(err, "signing session cookie")
}

func (st *sessionStore) save(ctx echo.Context, sess school.Session) error {
	now := time.Now()
	token, err := st.sign(sess, now)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(st.expiration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// get returns the stored session, or a zero Session when the cookie is
// absent, expired or tampered with.
func (st *sessionStore) get(ctx echo.Context) school.Session {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return school.Session{}
	}

	claims := new(sessionClaims)
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return st.secret, nil
	})
	if err != nil || !token.Valid {
		return school.Session{}
	}

	return school.Session{
		Token: claims.APIToken,
		User: school.User{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		},
	}
}

func (st *sessionStore) clear(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
}

// stash stores a one-shot value carried across one page navigation,
// eg. the selected student id from the dashboard's "generate report" action.
func (st *sessionStore) stash(ctx echo.Context, key, value string) {
	ctx.SetCookie(&http.Cookie{
		Name:     stashCookiePrefix + key,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// pop returns a stashed value and removes it.
func (st *sessionStore) pop(ctx echo.Context, key string) string {
	cookie, err := ctx.Cookie(stashCookiePrefix + key)
	if err != nil {
		return ""
	}
	ctx.SetCookie(&http.Cookie{
		Name:     stashCookiePrefix + key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	return cookie.Value
}
