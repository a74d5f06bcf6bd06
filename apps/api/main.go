package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/Eringobraugh/inf80057-assistant-backend/apps/api/echo"
	"github.com/Eringobraugh/inf80057-assistant-backend/core"
	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
	logsvc "github.com/Eringobraugh/inf80057-assistant-backend/services/logger"
	"github.com/Eringobraugh/inf80057-assistant-backend/storage/datafile"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dataLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DATA : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// data is read once; a missing or invalid file leaves its collection empty
	corpus, corpusFile := datafile.OpenCorpus(conf.Data.DocsPath, dataLogger)
	schedule, scheduleFile := datafile.OpenSchedule(conf.Data.DatesPath, dataLogger)
	dataLogger.Info(fmt.Sprintf("loaded %d documents from %s", len(corpus), corpusFile.Path))
	dataLogger.Info(fmt.Sprintf("loaded %d weeks from %s", len(schedule), scheduleFile.Path))

	tutorSvc := tutor.NewService(tutor.Options{
		Corpus:   corpus,
		Schedule: schedule,
		Paused:   conf.Killed,
		Name:     conf.AppName,
		Version:  conf.Build,
	})

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")
	if conf.Killed {
		logger.Warn("kill switch is on: answering requests with 503")
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("corpus_digest").Set(corpusFile.Digest)
	expvar.NewString("schedule_digest").Set(scheduleFile.Digest)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			TutorSvc:   tutorSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
