package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core/school"
)

const contextSessionKey = "session"

// sessionRequired loads the stored session into the request context; anything
// less than a complete session (token + user) lands back on the login page.
func (s *server) sessionRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sess := s.sessions.get(ctx)
		if !sess.Valid() {
			s.sessions.clear(ctx)
			return ctx.Redirect(http.StatusSeeOther, "/login")
		}
		ctx.Set(contextSessionKey, sess)
		return next(ctx)
	}
}

// teacherRequired gates the management endpoints; must run after sessionRequired.
func (s *server) teacherRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !contextSession(ctx).User.IsTeacher() {
			return errHTTPForbidden
		}
		return next(ctx)
	}
}

func contextSession(ctx echo.Context) school.Session {
	sess, _ := ctx.Get(contextSessionKey).(school.Session)
	return sess
}
