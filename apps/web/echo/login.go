package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
	schoolsvc "github.com/trezcool/shule/services/school"
)

type loginPageData struct {
	page
	Email    string
	Password string
}

// loginPage renders the login form. An existing session is validated against
// the backend first: still good means straight to the dashboard, stale means
// it is cleared silently and we stay here.
func (s *server) loginPage(ctx echo.Context) error {
	if sess := s.sessions.get(ctx); sess.Valid() {
		if _, err := s.svc.Dashboard(requestCtx(ctx), sess.Token); err == nil {
			return ctx.Redirect(http.StatusSeeOther, "/dashboard")
		}
		s.sessions.clear(ctx)
	}

	data := loginPageData{page: s.newPage(ctx, school.Session{}, "Login")}
	// demo credentials, as seeded by the backend
	data.Email = "admin@school.com"
	data.Password = "admin123"
	return ctx.Render(http.StatusOK, "login.html", data)
}

func (s *server) login(ctx echo.Context) error {
	var creds school.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}

	data := loginPageData{page: s.newPage(ctx, school.Session{}, "Login")}
	data.Email = creds.Email

	if err := creds.Validate(s.validate); err != nil {
		data.Error = s.validationMessage(err)
		return ctx.Render(http.StatusOK, "login.html", data)
	}

	res, err := s.svc.Login(requestCtx(ctx), creds)
	if err != nil {
		// failed logins mutate no storage; the form re-renders in place
		data.Error = schoolsvc.ErrorMessage(err, "Login failed")
		return ctx.Render(http.StatusOK, "login.html", data)
	}

	if err := s.sessions.save(ctx, school.Session{Token: res.Token, User: res.User}); err != nil {
		return errors.Wrap(err, "saving session")
	}
	setFlash(ctx, flashSuccess, res.Message)
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

// logout invalidates the token server-side (best effort), then clears the
// session and lands on login; the two always happen together.
func (s *server) logout(ctx echo.Context) error {
	sess := contextSession(ctx)
	if err := s.svc.Logout(requestCtx(ctx), sess.Token); err != nil {
		s.logger.Warn("backend logout failed: "+err.Error(), sess.User)
	}
	s.sessions.clear(ctx)
	return ctx.Redirect(http.StatusSeeOther, "/login")
}
