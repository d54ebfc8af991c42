package echoweb

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

const teachersSection = "/dashboard?section=" + sectionTeachers

func (s *server) createTeacher(ctx echo.Context) error {
	sess := contextSession(ctx)

	var data school.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(s.validate); err != nil {
		setFlash(ctx, flashError, s.validationMessage(err))
		return ctx.Redirect(http.StatusSeeOther, teachersSection)
	}

	usr, err := s.svc.CreateTeacher(requestCtx(ctx), sess.Token, data)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to add teacher", teachersSection)
	}
	setFlash(ctx, flashSuccess, fmt.Sprintf("Teacher %q added successfully!", usr.Name))
	return ctx.Redirect(http.StatusSeeOther, teachersSection)
}

type teacherEditPageData struct {
	page
	Teacher school.User
}

// editTeacherPage renders the edit form prefilled with the teacher's current
// details, looked up from the live list.
func (s *server) editTeacherPage(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	teachers, err := s.svc.Teachers(requestCtx(ctx), sess.Token)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to load teacher", teachersSection)
	}
	for _, t := range teachers {
		if t.ID == id {
			data := teacherEditPageData{page: s.newPage(ctx, sess, "Edit Teacher"), Teacher: t}
			return ctx.Render(http.StatusOK, "teacher_edit.html", data)
		}
	}
	return errHTTPNotFound
}

func (s *server) updateTeacher(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	var data school.UpdateTeacher
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTeacher")
	}
	if err = data.Validate(s.validate); err != nil {
		setFlash(ctx, flashError, s.validationMessage(err))
		return ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/teachers/%d/edit", id))
	}

	usr, err := s.svc.UpdateTeacher(requestCtx(ctx), sess.Token, id, data)
	if err != nil {
		return s.apiFail(ctx, err, "Failed to update teacher", fmt.Sprintf("/teachers/%d/edit", id))
	}
	setFlash(ctx, flashSuccess, fmt.Sprintf("Teacher %q updated successfully!", usr.Name))
	return ctx.Redirect(http.StatusSeeOther, teachersSection)
}

// confirmDeleteTeacher renders the confirmation page; nothing is deleted
// until the confirming POST comes in.
func (s *server) confirmDeleteTeacher(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	data := confirmDeletePageData{
		page:   s.newPage(ctx, sess, "Delete Teacher"),
		What:   "teacher",
		Action: fmt.Sprintf("/teachers/%d/delete", id),
		BackTo: teachersSection,
	}
	return ctx.Render(http.StatusOK, "confirm_delete.html", data)
}

func (s *server) deleteTeacher(ctx echo.Context) error {
	sess := contextSession(ctx)
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	if err = s.svc.DeleteTeacher(requestCtx(ctx), sess.Token, id); err != nil {
		return s.apiFail(ctx, err, "Failed to delete teacher", teachersSection)
	}
	setFlash(ctx, flashSuccess, "Teacher deleted successfully!")
	return ctx.Redirect(http.StatusSeeOther, teachersSection)
}
