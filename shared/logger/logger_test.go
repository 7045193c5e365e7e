package logger_test

import (
	"errors"
	"phoenix/config"
	"phoenix/shared/logger"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLogger(t *testing.T) {
	logger.InitLogger()

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected trace level after init, got %s", zerolog.GlobalLevel())
	}
}

func TestSetLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.LogLevel = "warn"

	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected warn level, got %s", zerolog.GlobalLevel())
	}

	cfg.Server.LogLevel = "not-a-level"
	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected fallback to trace level, got %s", zerolog.GlobalLevel())
	}
}

func TestErrorWithStack(t *testing.T) {
	// Must not panic on a plain error.
	logger.ErrorWithStack(errors.New("boom"))
}
