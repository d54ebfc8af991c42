package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

const attendanceSection = "/dashboard?section=" + sectionAttendance

func (s *server) recordAttendance(ctx echo.Context) error {
	sess := contextSession(ctx)

	var data school.NewAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAttendance")
	}
	if err := data.Validate(s.validate); err != nil {
		setFlash(ctx, flashError, s.validationMessage(err))
		return ctx.Redirect(http.StatusSeeOther, attendanceSection)
	}

	if _, err := s.svc.RecordAttendance(requestCtx(ctx), sess.Token, data); err != nil {
		return s.apiFail(ctx, err, "Failed to record attendance", attendanceSection)
	}
	setFlash(ctx, flashSuccess, "Attendance recorded successfully!")
	return ctx.Redirect(http.StatusSeeOther, attendanceSection)
}
