package echoweb

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core/school"
	schoolsvc "github.com/trezcool/shule/services/school"
)

// Dashboard sections; exactly one is rendered per request.
const (
	sectionHome         = "home"
	sectionTeachers     = "teachers"
	sectionStudents     = "students"
	sectionMarks        = "marks"
	sectionAttendance   = "attendance"
	sectionMyMarks      = "my-marks"
	sectionMyAttendance = "my-attendance"
)

var (
	teacherSections = map[string]bool{
		sectionHome:       true,
		sectionTeachers:   true,
		sectionStudents:   true,
		sectionMarks:      true,
		sectionAttendance: true,
	}
	studentSections = map[string]bool{
		sectionHome:         true,
		sectionMyMarks:      true,
		sectionMyAttendance: true,
	}
)

type dashboardPageData struct {
	page
	Section      string
	Stats        school.Dashboard
	Teachers     []school.User
	Students     []school.Student
	MyMarks      []school.Mark
	MyAttendance []school.Attendance
	Today        string
}

// dashboard is the section router: it validates the requested section against
// the session role, fetches the aggregate plus the one data set backing the
// visible section, and renders.
func (s *server) dashboard(ctx echo.Context) error {
	sess := contextSession(ctx)

	allowed := studentSections
	if sess.User.IsTeacher() {
		allowed = teacherSections
	}
	section := ctx.QueryParam("section")
	if !allowed[section] {
		section = sectionHome
	}

	data := dashboardPageData{
		page:    s.newPage(ctx, sess, "Dashboard"),
		Section: section,
		Today:   time.Now().Format("2006-01-02"),
	}

	stats, err := s.svc.Dashboard(requestCtx(ctx), sess.Token)
	if err != nil {
		if schoolsvc.IsUnauthorized(err) {
			s.sessions.clear(ctx)
			return ctx.Redirect(http.StatusSeeOther, "/login")
		}
		data.Error = schoolsvc.ErrorMessage(err, "Failed to load dashboard data. Please refresh the page.")
		return ctx.Render(http.StatusOK, "dashboard.html", data)
	}
	data.Stats = stats

	// the visible section's loader; the generic failure path returns to the
	// home section so a broken loader cannot redirect-loop
	switch section {
	case sectionTeachers:
		data.Teachers, err = s.svc.Teachers(requestCtx(ctx), sess.Token)

	case sectionStudents, sectionMarks, sectionAttendance:
		// student table and the selection dropdowns share one loader
		data.Students, err = s.svc.Students(requestCtx(ctx), sess.Token)

	case sectionMyMarks:
		var self school.Student
		if self, err = s.selfStudent(ctx, sess); err == nil {
			data.MyMarks, err = s.svc.StudentMarks(requestCtx(ctx), sess.Token, self.ID)
		}

	case sectionMyAttendance:
		var self school.Student
		if self, err = s.selfStudent(ctx, sess); err == nil {
			data.MyAttendance, err = s.svc.StudentAttendance(requestCtx(ctx), sess.Token, self.ID)
		}
	}
	if err != nil {
		return s.apiFail(ctx, err, "Failed to load data.", "/dashboard")
	}

	return ctx.Render(http.StatusOK, "dashboard.html", data)
}

// selfStudent resolves the signed-in student's own record.
func (s *server) selfStudent(ctx echo.Context, sess school.Session) (school.Student, error) {
	students, err := s.svc.Students(requestCtx(ctx), sess.Token)
	if err != nil {
		return school.Student{}, err
	}
	self, ok := school.SelfStudent(students, sess.User)
	if !ok {
		return school.Student{}, &schoolsvc.APIError{StatusCode: http.StatusNotFound, Message: "Student profile not found"}
	}
	return self, nil
}
