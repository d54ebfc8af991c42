package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

const marksSection = "/dashboard?section=" + sectionMarks

func (s *server) addMark(ctx echo.Context) error {
	sess := contextSession(ctx)

	var data school.NewMark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMark")
	}
	if err := data.Validate(s.validate); err != nil {
		setFlash(ctx, flashError, s.validationMessage(err))
		return ctx.Redirect(http.StatusSeeOther, marksSection)
	}

	if _, err := s.svc.AddMark(requestCtx(ctx), sess.Token, data); err != nil {
		return s.apiFail(ctx, err, "Failed to add marks", marksSection)
	}
	setFlash(ctx, flashSuccess, "Marks added successfully!")
	return ctx.Redirect(http.StatusSeeOther, marksSection)
}
