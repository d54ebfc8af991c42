package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var rosterHeader = []string{"ID", "Name", "Email", "Class", "Roll No"}

// exportStudents streams the teacher's roster as an xlsx download.
func (s *server) exportStudents(ctx echo.Context) error {
	sess := contextSession(ctx)

	students, err := s.svc.Students(requestCtx(ctx), sess.Token)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to load students", studentsSection)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("closing roster spreadsheet: " + err.Error())
		}
	}()
	sheet := f.GetSheetName(0)

	for col, h := range rosterHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "building header cell name")
		}
		if err = f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrap(err, "writing roster header")
		}
	}

	for row, st := range students {
		values := []interface{}{st.ID, st.User.Name, st.User.Email, st.ClassName, st.RollNo}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return errors.Wrap(err, "building cell name")
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return errors.Wrap(err, "writing roster row")
			}
		}
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="students.xlsx"`)
	res.WriteHeader(http.StatusOK)
	if err := f.Write(res); err != nil {
		return errors.Wrap(err, "streaming roster spreadsheet")
	}
	return nil
}
