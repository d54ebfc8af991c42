package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"gopkg.in/natefinch/lumberjack.v2"

	echoweb "github.com/trezcool/shule/apps/web/echo"
	"github.com/trezcool/shule/core"
	logsvc "github.com/trezcool/shule/services/logger"
	schoolsvc "github.com/trezcool/shule/services/school"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	std := log.New(logWriter(conf), "WEB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		rollbar := logsvc.NewRollbarLogger(std, conf)
		rollbar.Enable(true)
		logger = rollbar
	}

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	svc := schoolsvc.NewClient(conf, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoweb.NewServer(
		echoweb.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			School:     svc,
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

// logWriter tees logs to stdout and a rotated file when a log dir is set.
func logWriter(conf *core.Config) io.Writer {
	if conf.LogDir == "" {
		return os.Stdout
	}
	if err := os.MkdirAll(conf.LogDir, 0o755); err != nil {
		log.Printf("could not create log directory %q: %v; logging to stdout only", conf.LogDir, err)
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   filepath.Join(conf.LogDir, "web.log"),
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
