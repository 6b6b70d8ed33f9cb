package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the process-wide JSON logger. An unknown level falls
// back to info rather than failing startup.
func SetupLogging(level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: parsed,
	}

	return &logger
}
