package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	echoapi "github.com/ruviru/teachmate/apps/api/echo"
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
	logsvc "github.com/ruviru/teachmate/services/logger"
	sqlitekv "github.com/ruviru/teachmate/storage/kv/sqlite"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.LoadConfig()
	if err != nil {
		return err
	}

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(
			log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
			conf,
		)
	} else {
		logger = logsvc.NewZerologLogger(conf)
	}

	store, err := sqlitekv.Open(conf.Database.Path)
	if err != nil {
		return errors.Wrap(err, "opening state store")
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("closing state store", cerr)
		}
	}()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(os.Stdout, conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	validate, translator := core.NewValidator()

	profileSvc := profile.NewService(store, logger)
	subjectSvc := subject.NewService(store, logger)
	studentSvc := student.NewService(store, logger, subjectSvc)
	leaveSvc := leave.NewService(store, logger)
	drafter := leave.NewDrafter(aisvc.NewGeminiService(conf, logger), logger)
	taskSvc := task.NewService(store, logger)
	contactSvc := contact.NewService(store, logger)
	timetableSvc := timetable.NewService(store, logger)
	documentSvc := document.NewService(store, logger)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			Validate:     validate,
			Translator:   translator,
			ProfileSvc:   profileSvc,
			SubjectSvc:   subjectSvc,
			StudentSvc:   studentSvc,
			LeaveSvc:     leaveSvc,
			Drafter:      drafter,
			TaskSvc:      taskSvc,
			ContactSvc:   contactSvc,
			TimetableSvc: timetableSvc,
			DocumentSvc:  documentSvc,
			MailSvc:      mailSvc,
		},
	)
	server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		return errors.Wrap(err, "server error")

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				return errors.Wrap(err, "could not force stop server")
			}
		}
	}
	return nil
}
