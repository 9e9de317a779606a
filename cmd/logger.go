package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// configureLogger sets the level of log from a LOG_LEVEL value. If verbose is true the
// logger is set to DebugLevel regardless.
func configureLogger(log *logrus.Logger, logLevel string, verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}

	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}

	log.SetLevel(level)
}
