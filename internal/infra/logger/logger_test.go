package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"homework_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

func TestLineFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "cycle failed",
		Data: logrus.Fields{
			FieldName: "poller",
			"cursor":  int64(1700000000),
			"error":   errors.New("boom"),
		},
	}

	out, err := (&LineFormatter{}).Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "2024-05-01 12:30:00,000 - poller - ERROR - cycle failed cursor=1700000000 error=boom\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLineFormatterWithoutName(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{},
	}
	out, err := (&LineFormatter{}).Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(string(out), " - root - INFO - hello") {
		t.Errorf("Format() = %q", out)
	}
}

func TestInitAppendsToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "program.log")
	if err := os.WriteFile(file, []byte("previous line\n"), 0o644); err != nil {
		t.Fatalf("seed log file: %v", err)
	}

	if err := Init(config.LogConfig{Level: "debug", File: file, Environment: "development"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Named("main").Info("bot started")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "previous line\n") {
		t.Errorf("log file was truncated: %q", content)
	}
	if !strings.Contains(content, " - main - INFO - bot started") {
		t.Errorf("log file missing record: %q", content)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
}

func TestInitInvalidLevelFallsBackToInfo(t *testing.T) {
	Log.SetFormatter(&logrus.TextFormatter{})
	Log.SetLevel(logrus.InfoLevel)

	file := filepath.Join(t.TempDir(), "program.log")
	if err := Init(config.LogConfig{Level: "loud", File: file, Environment: "development"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), " - root - WARNING - Invalid log level 'loud'") {
		t.Errorf("level warning not in line layout: %q", data)
	}
}

func TestInitProductionUsesJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "program.log")
	if err := Init(config.LogConfig{Level: "info", File: file, Environment: "production"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", Log.Formatter)
	}
}

func TestInitUnwritablePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing-dir", "program.log")
	if err := Init(config.LogConfig{Level: "info", File: file}); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
