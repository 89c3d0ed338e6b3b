package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger carries diagnostics. Operator-facing messages go through ui.
var logger = logrus.New()

func configureLogging(w io.Writer, verbose bool) {
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}
