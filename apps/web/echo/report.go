package echoweb

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core/school"
)

type reportPageData struct {
	page
	Students  []school.Student // teacher's selection dropdown
	StudentID int              // selected student; 0 means none yet
	Report    *school.Report
}

// report renders the AI study report page. A teacher picks a student (the
// dashboard's per-row action pre-selects one); a student always gets their
// own report, no selection offered.
func (s *server) report(ctx echo.Context) error {
	sess := contextSession(ctx)
	data := reportPageData{page: s.newPage(ctx, sess, "Student Report")}

	if sess.User.IsStudent() {
		self, err := s.selfStudent(ctx, sess)
		if err != nil {
			return s.apiFail(ctx, err, "Failed to load your profile", "/dashboard")
		}
		data.StudentID = self.ID
		return s.renderReport(ctx, sess, data)
	}

	students, err := s.svc.Students(requestCtx(ctx), sess.Token)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to load students", "/dashboard")
	}
	data.Students = students
	data.StudentID = s.selectedStudentID(ctx)

	if data.StudentID == 0 {
		// nothing picked yet; render the selection form only
		return ctx.Render(http.StatusOK, "report.html", data)
	}
	return s.renderReport(ctx, sess, data)
}

// selectedStudentID resolves the pre-selected student: the one-shot stash set
// by the dashboard's report action wins, then the ?student= query param.
func (s *server) selectedStudentID(ctx echo.Context) int {
	raw := s.sessions.pop(ctx, "student")
	if raw == "" {
		raw = ctx.QueryParam("student")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func (s *server) renderReport(ctx echo.Context, sess school.Session, data reportPageData) error {
	rep, err := s.svc.GenerateReport(requestCtx(ctx), sess.Token, data.StudentID)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to generate report", "/report")
	}
	if !rep.Success {
		// generation can fail inside a 2xx; surface the backend's message
		data.Error = rep.Message
		if data.Error == "" {
			data.Error = "Failed to generate report"
		}
		return ctx.Render(http.StatusOK, "report.html", data)
	}
	data.Report = &rep
	return ctx.Render(http.StatusOK, "report.html", data)
}
