package echoweb

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/shule/core"
	schoolsvc "github.com/trezcool/shule/services/school"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		School     *schoolsvc.Client
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		conf       *core.Config
		logger     core.Logger
		svc        *schoolsvc.Client
		validate   *validator.Validate
		translator ut.Translator
		sessions   *sessionStore

		app        *echo.Echo
		errCh      chan error
		shutdownCh chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		conf:       deps.Conf,
		logger:     deps.Logger,
		svc:        deps.School,
		validate:   deps.Validate,
		translator: deps.Translator,
		sessions:   newSessionStore(deps.Conf),
		app:        echo.New(),
		errCh:      make(chan error, 1),
		shutdownCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdownCh, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.Renderer = newRenderer()
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.logger, s.conf.Debug)
	s.app.Debug = s.conf.Debug

	s.app.GET("/", s.root)
	s.app.GET("/login", s.loginPage)
	s.app.POST("/login", s.login)

	// authed pages
	ag := s.app.Group("", s.sessionRequired)
	ag.POST("/logout", s.logout)
	ag.GET("/dashboard", s.dashboard)
	ag.GET("/report", s.report)

	// management endpoints
	tg := ag.Group("", s.teacherRequired)
	tg.POST("/teachers", s.createTeacher)
	tg.GET("/teachers/:id/edit", s.editTeacherPage)
	tg.POST("/teachers/:id", s.updateTeacher)
	tg.GET("/teachers/:id/delete", s.confirmDeleteTeacher)
	tg.POST("/teachers/:id/delete", s.deleteTeacher)

	tg.POST("/students", s.createStudent)
	tg.GET("/students/export", s.exportStudents)
	tg.GET("/students/:id/edit", s.editStudentPage)
	tg.POST("/students/:id", s.updateStudent)
	tg.GET("/students/:id/delete", s.confirmDeleteStudent)
	tg.POST("/students/:id/delete", s.deleteStudent)
	tg.POST("/students/:id/report", s.selectReportStudent)

	tg.POST("/marks", s.addMark)
	tg.POST("/attendance", s.recordAttendance)
}

func (s *server) root(ctx echo.Context) error {
	if s.sessions.get(ctx).Valid() {
		return ctx.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return ctx.Redirect(http.StatusSeeOther, "/login")
}

func (s *server) Start() {
	if err := s.app.Start(s.conf.Server.Host); err != nil && err != http.ErrServerClosed {
		s.errCh <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errCh
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdownCh
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
