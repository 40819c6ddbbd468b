package logs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide application logger, configured by Init.
var Logger = logrus.New()

// Init configures the global logger from LOG_LEVEL and LOG_FORMAT
// (text|json). Unknown values fall back to info/text.
func Init() {
	switch os.Getenv("LOG_LEVEL") {
	case "trace":
		Logger.SetLevel(logrus.TraceLevel)
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warning", "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Logger.SetOutput(os.Stdout)
}
