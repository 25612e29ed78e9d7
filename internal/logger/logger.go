package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger writes every level to stderr so stdout stays clean for command
// output.
func SetupLogger() {
	SetupLoggerTo(os.Stderr)
}

// SetupLoggerTo is SetupLogger with an explicit destination.
func SetupLoggerTo(w io.Writer) {
	logrus.SetOutput(w)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// SetLevel applies a configured level name, keeping the current level when
// the name is not recognised.
func SetLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.WithField("level", name).Warn("unknown log level")
		return
	}
	logrus.SetLevel(level)
}
