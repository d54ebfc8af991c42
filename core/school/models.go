package school

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u User) IsStudent() bool { return u.Role == RoleStudent }

// RoleLabel returns the display name of the user's role.
func (u User) RoleLabel() string {
	if u.IsTeacher() {
		return "Teacher"
	}
	return "Student"
}

// Session is the authenticated identity cached client-side: the opaque API
// token plus the user profile. Both are set and cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session counts as authenticated: token and user
// both present. Actual validity is re-checked by the backend on every call.
func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != 0 && s.User.Role != ""
}

type Student struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	TeacherID int    `json:"teacher_id"`
	ClassName string `json:"class_name"`
	RollNo    string `json:"roll_no"`
	User      User   `json:"user"`
}

// Label renders the student for selection dropdowns.
func (s Student) Label() string {
	return fmt.Sprintf("%s (%s - %s)", s.User.Name, s.ClassName, s.RollNo)
}

// SelfStudent derives the signed-in student's own record by matching the
// student list against the session user; the API has no direct self-lookup.
func SelfStudent(students []Student, usr User) (Student, bool) {
	for _, st := range students {
		if st.UserID == usr.ID {
			return st, true
		}
	}
	if len(students) > 0 {
		return students[0], true
	}
	return Student{}, false
}

type Mark struct {
	ID        int     `json:"id"`
	StudentID int     `json:"student_id"`
	Subject   string  `json:"subject"`
	Marks     float64 `json:"marks"`
}

// Grade computes the mark's letter grade; render-only, never sent back.
func (m Mark) Grade() Grade { return GradeFor(m.Marks) }

// Date is a calendar day serialized as "2006-01-02" on the wire.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// Display renders the date for tables, eg. "Jan 2, 2006".
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

type Attendance struct {
	ID        int    `json:"id"`
	StudentID int    `json:"student_id"`
	Date      Date   `json:"date"`
	Status    string `json:"status"`
}

func (a Attendance) Present() bool { return a.Status == StatusPresent }

// Dashboard is the aggregate returned by GET /dashboard; the My* fields are
// only populated for teachers.
type Dashboard struct {
	TotalStudents    int          `json:"total_students"`
	TotalTeachers    int          `json:"total_teachers"`
	MyStudentsCount  int          `json:"my_students_count"`
	MyStudents       []Student    `json:"my_students"`
	RecentMarks      []Mark       `json:"recent_marks"`
	RecentAttendance []Attendance `json:"recent_attendance"`
}

// Report is the AI-generated study report; produced entirely by the backend,
// this app only renders it.
type Report struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message,omitempty"`
	WeakSubjects []string `json:"weak_subjects"`
	Tips         []string `json:"tips"`
	StudyPlan    string   `json:"study_plan"`
	Summary      string   `json:"summary"`
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}

// NewTeacher contains information needed to register a new teacher account.
type NewTeacher struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"-"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Role = RoleTeacher
	return validate.Struct(nt)
}

// UpdateTeacher defines what may be provided to modify an existing teacher.
type UpdateTeacher struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"-"`
}

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	ut.Name = core.CleanString(ut.Name)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	ut.Role = RoleTeacher
	return validate.Struct(ut)
}

// NewStudent contains information needed to enroll a new student.
type NewStudent struct {
	Name      string `json:"name" form:"name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	ClassName string `json:"class_name" form:"class_name" validate:"required"`
	RollNo    string `json:"roll_no" form:"roll_no" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.ClassName = core.CleanString(ns.ClassName)
	ns.RollNo = core.CleanString(ns.RollNo)
	return validate.Struct(ns)
}

// UpdateStudent defines what may be provided to modify an existing student.
type UpdateStudent struct {
	Name      string `json:"name" form:"name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	ClassName string `json:"class_name" form:"class_name" validate:"required"`
	RollNo    string `json:"roll_no" form:"roll_no" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.ClassName = core.CleanString(us.ClassName)
	us.RollNo = core.CleanString(us.RollNo)
	return validate.Struct(us)
}

// NewMark records a mark for a student.
type NewMark struct {
	StudentID int     `json:"student_id" form:"student_id" validate:"selection"`
	Subject   string  `json:"subject" form:"subject" validate:"required"`
	Marks     float64 `json:"marks" form:"marks" validate:"gte=0,lte=100"`
}

func (nm *NewMark) Validate(validate *validator.Validate) error {
	nm.Subject = core.CleanString(nm.Subject)
	return validate.Struct(nm)
}

// NewAttendance records a day's attendance for a student.
type NewAttendance struct {
	StudentID int    `json:"student_id" form:"student_id" validate:"selection"`
	Date      string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" form:"status" validate:"required,oneof=present absent"`
}

func (na *NewAttendance) Validate(validate *validator.Validate) error {
	na.Date = core.CleanString(na.Date)
	na.Status = core.CleanString(na.Status, true /* lower */)
	return validate.Struct(na)
}
