// Package logs provides loggers for the different packages
package logs

import (
	"os"

	"github.com/juju/loggo"
)

// GetLogger returns a logger for the package, debug level is
// controlled by the FMI_DEBUG environment variable
func GetLogger(packageName string) (logger loggo.Logger) {
	logger = loggo.GetLogger(packageName)
	osDebug := os.Getenv("FMI_DEBUG")
	if osDebug != "" && osDebug != "0" {
		logger.SetLogLevel(loggo.DEBUG)
	} else {
		logger.SetLogLevel(loggo.INFO)
	}
	return logger
}
