package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ruviru/teachmate/core"
	"github.com/ruviru/teachmate/core/contact"
	"github.com/ruviru/teachmate/core/document"
	"github.com/ruviru/teachmate/core/leave"
	"github.com/ruviru/teachmate/core/profile"
	"github.com/ruviru/teachmate/core/student"
	"github.com/ruviru/teachmate/core/subject"
	"github.com/ruviru/teachmate/core/task"
	"github.com/ruviru/teachmate/core/timetable"
	aisvc "github.com/ruviru/teachmate/services/ai"
	emailsvc "github.com/ruviru/teachmate/services/email"
	dummykv "github.com/ruviru/teachmate/storage/kv/dummy"
)

type testApp struct {
	server *Server
	deps   ServerDeps
	gen    *aisvc.DummyService
	mail   interface{ Sent() []core.EmailMessage }
}

func setup(t *testing.T) *testApp {
	t.Helper()

	conf := &core.Config{
		TestMode: true,
		AppName:  "TeachMate",
		Server:   core.ServerConfig{Host: "127.0.0.1", Port: 8000},
		AI:       core.AIConfig{Timeout: time.Second},
	}
	logger := core.NopLogger{}
	store := dummykv.Open()
	validate, translator := core.NewValidator()
	gen := aisvc.NewDummyService("Dear Principal, kindly grant me leave.")
	mailSvc := emailsvc.NewConsoleService(nil, conf)

	subjectSvc := subject.NewService(store, logger)
	deps := ServerDeps{
		Conf:         conf,
		Logger:       logger,
		Validate:     validate,
		Translator:   translator,
		ProfileSvc:   profile.NewService(store, logger),
		SubjectSvc:   subjectSvc,
		StudentSvc:   student.NewService(store, logger, subjectSvc),
		LeaveSvc:     leave.NewService(store, logger),
		Drafter:      leave.NewDrafter(gen, logger),
		TaskSvc:      task.NewService(store, logger),
		ContactSvc:   contact.NewService(store, logger),
		TimetableSvc: timetable.NewService(store, logger),
		DocumentSvc:  document.NewService(store, logger),
		MailSvc:      mailSvc,
	}
	return &testApp{server: NewServer(deps), deps: deps, gen: gen, mail: mailSvc}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func decodeObj(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
