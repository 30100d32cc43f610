package cmd

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates the command logger. Debug messages are shown only when
// --verbose is set; the engineering reports themselves go to stdout via fmt.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if rootVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
