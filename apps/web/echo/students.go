package echoweb

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

const studentsSection = "/dashboard?section=" + sectionStudents

func (s *server) createStudent(ctx echo.Context) error {
	sess := contextSession(ctx)

	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(s.validate); err != nil {
		setFlash(ctx, flashError, s.validationMessage(err))
		return ctx.Redirect(http.StatusSeeOther, studentsSection)
	}

	st, err := s.svc.CreateStudent(requestCtx(ctx), sess.Token, data)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to add student", studentsSection)
	}
	setFlash(ctx, flashSuccess, fmt.Sprintf("Student %q added successfully!", st.User.Name))
	return ctx.Redirect(http.StatusSeeOther, studentsSection)
}

type studentEditPageData struct {
	page
	Student school.Student
}

func (s *server) editStudentPage(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	students, err := s.svc.Students(requestCtx(ctx), sess.Token)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to load student", studentsSection)
	}
	for _, st := range students {
		if st.ID == id {
			data := studentEditPageData{page: s.newPage(ctx, sess, "Edit Student"), Student: st}
			return ctx.Render(http.StatusOK, "student_edit.html", data)
		}
	}
	return errHTTPNotFound
}

func (s *server) updateStudent(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	var data school.UpdateStudent
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err = data.Validate(s.validate); err != nil {
		setFlash(ctx, flashError, s.validationMessage(err))
		return ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/students/%d/edit", id))
	}

	st, err := s.svc.UpdateStudent(requestCtx(ctx), sess.Token, id, data)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to update student", fmt.Sprintf("/students/%d/edit", id))
	}
	setFlash(ctx, flashSuccess, fmt.Sprintf("Student %q updated successfully!", st.User.Name))
	return ctx.Redirect(http.StatusSeeOther, studentsSection)
}

func (s *server) confirmDeleteStudent(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	data := confirmDeletePageData{
		page:   s.newPage(ctx, sess, "Delete Student"),
		What:   "student",
		Action: fmt.Sprintf("/students/%d/delete", id),
		BackTo: studentsSection,
	}
	return ctx.Render(http.StatusOK, "confirm_delete.html", data)
}

func (s *server) deleteStudent(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	if err = s.svc.DeleteStudent(requestCtx(ctx), sess.Token, id); err != nil {
		return s.apiFail(ctx, err, "Failed to delete student", studentsSection)
	}
	setFlash(ctx, flashSuccess, "Student deleted successfully!")
	return ctx.Redirect(http.StatusSeeOther, studentsSection)
}

// selectReportStudent stashes the chosen student id and lands on the report
// page; the stash survives exactly one navigation.
func (s *server) selectReportStudent(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	s.sessions.stash(ctx, "student", strconv.Itoa(id))
	return ctx.Redirect(http.StatusSeeOther, "/report")
}
