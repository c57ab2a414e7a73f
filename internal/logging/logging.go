// Package logging configures logrus for the CLI.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Setup configures the standard logger level and formatter.
func Setup(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(lvl)
	if out != nil {
		logrus.SetOutput(out)
	}

	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", format)
	}
	return nil
}

// NewRun returns the standard logger tagged with a fresh run id.
func NewRun(command string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": command,
	})
}
