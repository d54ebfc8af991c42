package echoweb

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/school"
	schoolsvc "github.com/trezcool/shule/services/school"
)

// page carries the fields every template needs.
type page struct {
	Title string
	User  school.User
	Now   string
	Flash *flashMessage
	Error string
}

// confirmDeletePageData drives the shared delete-confirmation page.
type confirmDeletePageData struct {
	page
	What   string // eg. "teacher"
	Action string // POST target that performs the delete
	BackTo string // cancel link
}

const clockLayout = "Monday, January 2, 2006 • 3:04 PM"

func (s *server) newPage(ctx echo.Context, sess school.Session, title string) page {
	return page{
		Title: title,
		User:  sess.User,
		Now:   nowString(),
		Flash: popFlash(ctx),
	}
}

func requestCtx(ctx echo.Context) context.Context {
	return ctx.Request().Context()
}

func intParam(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, errHTTPNotFound
	}
	return id, nil
}

// apiFail converts a failed backend call into the uniform UX: a 401 tears the
// session down and lands on login; anything else flashes the message and
// returns to backTo.
func (s *server) apiFail(ctx echo.Context, err error, fallback, backTo string) error {
	if schoolsvc.IsUnauthorized(err) {
		s.sessions.clear(ctx)
		return ctx.Redirect(http.StatusSeeOther, "/login")
	}
	setFlash(ctx, flashError, schoolsvc.ErrorMessage(err, fallback))
	return ctx.Redirect(http.StatusSeeOther, backTo)
}

// validationMessage flattens a validation failure into one inline message.
func (s *server) validationMessage(err error) string {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, fldErr := range origErr {
			return fldErr.Translate(s.translator)
		}
	case *core.ValidationError:
		for _, fldErr := range origErr.Fields {
			return fldErr.Error
		}
		return origErr.Error()
	}
	return err.Error()
}

func nowString() string {
	return time.Now().Format(clockLayout)
}
