// internal/infra/logger/logger.go
package logger

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"homework_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// FieldName is the entry field carrying the component name.
const FieldName = "logger"

const timestampFormat = "2006-01-02 15:04:05,000"

// Log is the global logger instance
var Log = logrus.New()

// Init initializes the global logger based on the logging configuration.
// Records are appended to cfg.File.
func Init(cfg config.LogConfig) error {
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}
	Log.SetOutput(f)

	if cfg.Environment == "production" || cfg.Environment == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		Log.SetFormatter(&LineFormatter{})
	}

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.Level, err)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	return nil
}

// Named returns an entry tagged with the component name.
func Named(name string) *logrus.Entry {
	return Log.WithField(FieldName, name)
}

// LineFormatter writes "time - logger - LEVEL - message" followed by any other fields.
type LineFormatter struct{}

func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	name, _ := entry.Data[FieldName].(string)
	if name == "" {
		name = "root"
	}
	fmt.Fprintf(b, "%s - %s - %s - %s",
		entry.Time.Format(timestampFormat),
		name,
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != FieldName {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
