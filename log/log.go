// Package log provides the application's logging infrastructure: console streams plus
// per-severity append-only log files.
package log

import (
	"os"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/ytgrab-cli/ytgrab/key"
	"github.com/ytgrab-cli/ytgrab/where"
)

// outcomeField marks entries emitted through Success/Successf so the file hook
// can route them to their own sink.
const outcomeField = "outcome"

// Setup initializes the logging subsystem: console formatting, severity level, and,
// when persistent logging is enabled, the per-severity file sinks.
func Setup() error {
	logrus.SetOutput(os.Stdout)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	lvl := viper.GetString(key.LogsLevel)
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	if viper.GetBool(key.LogsWrite) {
		hook, err := newSeverityFileHook(where.Logs())
		if err != nil {
			return err
		}
		logrus.AddHook(hook)
	}

	return nil
}

// sinkFor maps an entry to the log file name collecting its severity.
func sinkFor(e *logrus.Entry) string {
	if _, ok := e.Data[outcomeField]; ok {
		return "success.log"
	}

	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "error.log"
	case logrus.WarnLevel:
		return "warning.log"
	default:
		return "infos.log"
	}
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend.

func Fatal(args ...interface{}) {
	logrus.Fatal(args...)
}
func Fatalf(format string, args ...interface{}) {
	logrus.Fatalf(format, args...)
}
func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

// Success emits an informational entry routed to the success sink.
func Success(args ...interface{}) {
	logrus.WithField(outcomeField, "success").Info(args...)
}

// Successf emits a formatted informational entry routed to the success sink.
func Successf(format string, args ...interface{}) {
	logrus.WithField(outcomeField, "success").Infof(format, args...)
}
