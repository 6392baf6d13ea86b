package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New создаёт logrus-логгер с уровнем и форматом из конфигурации.
// Неизвестный уровень заменяется на info, формат "json" включает JSONFormatter.
func New(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
