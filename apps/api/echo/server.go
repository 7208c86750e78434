package echoapi

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

	"github.com/ruviru/teachmate/core"
	"github.com/ruviru/teachmate/core/contact"
	"github.com/ruviru/teachmate/core/document"
	"github.com/ruviru/teachmate/core/leave"
	"github.com/ruviru/teachmate/core/profile"
	"github.com/ruviru/teachmate/core/student"
	"github.com/ruviru/teachmate/core/subject"
	"github.com/ruviru/teachmate/core/task"
	"github.com/ruviru/teachmate/core/timetable"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		ProfileSvc   *profile.Service
		SubjectSvc   *subject.Service
		StudentSvc   *student.Service
		LeaveSvc     *leave.Service
		Drafter      *leave.Drafter
		TaskSvc      *task.Service
		ContactSvc   *contact.Service
		TimetableSvc *timetable.Service
		DocumentSvc  *document.Service
		MailSvc      core.EmailService
	}

	Server struct {
		deps ServerDeps
		app  *echo.Echo

		errChan      chan error
		shutdownChan chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:         deps,
		app:          echo.New(),
		errChan:      make(chan error, 1),
		shutdownChan: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerProfileAPI(v1, s.deps)
	registerSubjectAPI(v1, s.deps)
	registerStudentAPI(v1, s.deps)
	registerLeaveAPI(v1, s.deps)
	registerTaskAPI(v1, s.deps)
	registerContactAPI(v1, s.deps)
	registerTimetableAPI(v1, s.deps)
	registerDocumentAPI(v1, s.deps)
}

func (s *Server) Start() {
	signal.Notify(s.shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s.errChan <- s.app.Start(s.deps.Conf.Server.Address())
	}()
}

// Errors receives the server's fatal listen error, if any.
func (s *Server) Errors() <-chan error { return s.errChan }

// ShutdownSignal receives OS interrupts and internal shutdown requests.
func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdownChan }

func (s *Server) Shutdown(ctx context.Context) error { return s.app.Shutdown(ctx) }

func (s *Server) Close() error { return s.app.Close() }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) signalShutdown() {
	s.shutdownChan <- syscall.SIGTERM
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to TeachMate API!")
}
