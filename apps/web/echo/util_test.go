package echoweb

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/school"
	logsvc "github.com/trezcool/shule/services/logger"
	schoolsvc "github.com/trezcool/shule/services/school"
)

const testToken = "test-api-token"

var (
	testTeacher     = school.User{ID: 1, Name: "Jane Smith", Email: "jane@school.com", Role: school.RoleTeacher}
	testStudentUser = school.User{ID: 2, Name: "John Doe", Email: "john@school.com", Role: school.RoleStudent}

	testStudents = []school.Student{
		{ID: 5, UserID: 2, TeacherID: 1, ClassName: "10A", RollNo: "15", User: testStudentUser},
		{ID: 6, UserID: 3, TeacherID: 1, ClassName: "10A", RollNo: "16",
			User: school.User{ID: 3, Name: "Mary Major", Email: "mary@school.com", Role: school.RoleStudent}},
	}
)

// fakeBackend mimics the school REST API: token auth via the ?token= query
// param, FastAPI-style {"detail": ...} errors, and canned data. It counts
// hits per "METHOD /path" so tests can assert exactly which endpoints a page
// load touched.
type fakeBackend struct {
	*httptest.Server

	mu   sync.Mutex
	hits map[string]int

	reportSuccess  bool
	emptyDashboard bool
}

func newFakeBackend() *fakeBackend {
	fb := &fakeBackend{hits: make(map[string]int), reportSuccess: true}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", fb.login)
	mux.HandleFunc("POST /api/logout", ok)
	mux.HandleFunc("GET /api/dashboard", fb.dashboard)
	mux.HandleFunc("GET /api/teachers", fb.teachers)
	mux.HandleFunc("POST /api/teachers", fb.createTeacher)
	mux.HandleFunc("PUT /api/teachers/{id}", fb.updateTeacher)
	mux.HandleFunc("DELETE /api/teachers/{id}", ok)
	mux.HandleFunc("GET /api/students", fb.students)
	mux.HandleFunc("POST /api/students", fb.createStudent)
	mux.HandleFunc("PUT /api/students/{id}", fb.updateStudent)
	mux.HandleFunc("DELETE /api/students/{id}", ok)
	mux.HandleFunc("GET /api/marks/{id}", fb.studentMarks)
	mux.HandleFunc("POST /api/marks", fb.addMark)
	mux.HandleFunc("GET /api/attendance/{id}", fb.studentAttendance)
	mux.HandleFunc("POST /api/attendance", fb.recordAttendance)
	mux.HandleFunc("POST /api/ai-report", fb.report)

	fb.Server = httptest.NewServer(fb.middleware(mux))
	return fb
}

// middleware counts the hit and enforces token auth on everything but login.
func (fb *fakeBackend) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.hits[r.Method+" "+r.URL.Path]++
		fb.mu.Unlock()

		if r.URL.Path != "/api/login" && r.URL.Query().Get("token") != testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (fb *fakeBackend) hit(method, path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[method+" "+path]
}

func (fb *fakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var creds school.Credentials
	_ = json.NewDecoder(r.Body).Decode(&creds)

	var usr school.User
	switch creds.Email {
	case testTeacher.Email:
		usr = testTeacher
	case testStudentUser.Email:
		usr = testStudentUser
	default:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":   testToken,
		"user":    usr,
		"message": "Welcome back, " + usr.Name + "!",
	})
}

func (fb *fakeBackend) dashboard(w http.ResponseWriter, _ *http.Request) {
	if fb.emptyDashboard {
		writeJSON(w, http.StatusOK, school.Dashboard{})
		return
	}
	writeJSON(w, http.StatusOK, school.Dashboard{
		TotalStudents:   len(testStudents),
		TotalTeachers:   1,
		MyStudentsCount: len(testStudents),
		MyStudents:      testStudents,
		RecentMarks:     []school.Mark{{ID: 1, StudentID: 5, Subject: "Math", Marks: 88}},
		RecentAttendance: []school.Attendance{
			{ID: 1, StudentID: 5, Date: testDate("2026-03-02"), Status: school.StatusPresent},
		},
	})
}

func (fb *fakeBackend) teachers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []school.User{testTeacher})
}

func (fb *fakeBackend) createTeacher(w http.ResponseWriter, r *http.Request) {
	var data school.NewTeacher
	_ = json.NewDecoder(r.Body).Decode(&data)
	writeJSON(w, http.StatusOK, school.User{ID: 9, Name: data.Name, Email: data.Email, Role: school.RoleTeacher})
}

func (fb *fakeBackend) updateTeacher(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))
	var data school.UpdateTeacher
	_ = json.NewDecoder(r.Body).Decode(&data)
	writeJSON(w, http.StatusOK, school.User{ID: id, Name: data.Name, Email: data.Email, Role: school.RoleTeacher})
}

func (fb *fakeBackend) students(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, testStudents)
}

func (fb *fakeBackend) createStudent(w http.ResponseWriter, r *http.Request) {
	var data school.NewStudent
	_ = json.NewDecoder(r.Body).Decode(&data)
	writeJSON(w, http.StatusOK, school.Student{
		ID: 7, UserID: 4, TeacherID: 1, ClassName: data.ClassName, RollNo: data.RollNo,
		User: school.User{ID: 4, Name: data.Name, Email: data.Email, Role: school.RoleStudent},
	})
}

func (fb *fakeBackend) updateStudent(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))
	var data school.UpdateStudent
	_ = json.NewDecoder(r.Body).Decode(&data)
	writeJSON(w, http.StatusOK, school.Student{
		ID: id, UserID: 2, TeacherID: 1, ClassName: data.ClassName, RollNo: data.RollNo,
		User: school.User{ID: 2, Name: data.Name, Email: data.Email, Role: school.RoleStudent},
	})
}

func (fb *fakeBackend) studentMarks(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))
	writeJSON(w, http.StatusOK, []school.Mark{
		{ID: 1, StudentID: id, Subject: "Math", Marks: 88},
		{ID: 2, StudentID: id, Subject: "History", Marks: 45},
	})
}

func (fb *fakeBackend) addMark(w http.ResponseWriter, r *http.Request) {
	var data school.NewMark
	_ = json.NewDecoder(r.Body).Decode(&data)
	writeJSON(w, http.StatusOK, school.Mark{ID: 3, StudentID: data.StudentID, Subject: data.Subject, Marks: data.Marks})
}

func (fb *fakeBackend) studentAttendance(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))
	writeJSON(w, http.StatusOK, []school.Attendance{
		{ID: 1, StudentID: id, Date: testDate("2026-03-02"), Status: school.StatusPresent},
		{ID: 2, StudentID: id, Date: testDate("2026-03-03"), Status: school.StatusAbsent},
	})
}

func (fb *fakeBackend) recordAttendance(w http.ResponseWriter, r *http.Request) {
	var data school.NewAttendance
	_ = json.NewDecoder(r.Body).Decode(&data)
	writeJSON(w, http.StatusOK, school.Attendance{ID: 4, StudentID: data.StudentID, Status: data.Status})
}

func (fb *fakeBackend) report(w http.ResponseWriter, _ *http.Request) {
	if !fb.reportSuccess {
		writeJSON(w, http.StatusOK, school.Report{Success: false, Message: "AI service unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, school.Report{
		Success:      true,
		WeakSubjects: []string{"History"},
		Tips:         []string{"Review past papers weekly"},
		StudyPlan:    "Week 1: History fundamentals",
		Summary:      "Solid overall performance.",
	})
}

func ok(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func testDate(s string) school.Date {
	t, _ := time.Parse("2006-01-02", s)
	return school.Date{Time: t}
}

// newTestApp builds an app wired to the fake backend, plus the session store
// used to mint cookies for authenticated requests.
func newTestApp(t *testing.T, backend *fakeBackend) (Server, *sessionStore) {
	t.Helper()

	conf := &core.Config{
		AppName:   "shule",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			ShutdownTimeout:        time.Second,
			SessionExpirationDelta: time.Hour,
		},
		API: core.APIConfig{BaseURL: backend.URL + "/api", Timeout: 5 * time.Second},
	}

	validate := validator.New()
	translator := newTestTranslator(t)
	core.InitValidators(validate, translator)

	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))

	app := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		School:     schoolsvc.NewClient(conf, logger),
		Validate:   validate,
		Translator: translator,
	})
	return app, newSessionStore(conf)
}

func newTestTranslator(t *testing.T) ut.Translator {
	t.Helper()
	_en := en.New()
	translator, found := ut.New(_en, _en).GetTranslator("en")
	if !found {
		t.Fatal("en translator not found")
	}
	return translator
}

// sessionCookie mints a valid signed session cookie for the given user.
func sessionCookie(t *testing.T, store *sessionStore, usr school.User) *http.Cookie {
	t.Helper()
	token, err := store.sign(school.Session{Token: testToken, User: usr}, time.Now())
	if err != nil {
		t.Fatalf("signing session cookie: %v", err)
	}
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func doRequest(app Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// responseCookie finds a cookie set on the response, nil if absent.
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
