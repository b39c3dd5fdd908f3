package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger configured from LOG_LEVEL / LOG_FORMAT values.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.SetOutput(os.Stdout)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	return logger
}

// ForComponent returns an entry tagged with the component name, so every
// service logs under a stable field.
func ForComponent(logger *logrus.Logger, component string) *logrus.Entry {
	return logger.WithField("component", component)
}
