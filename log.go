package notion

import (
	"strings"

	"github.com/akeil/notion/internal/logging"
)

// SetLogLevel sets the log level by name:
// "debug", "info", "warning" or "error".
// Any other value turns logging off.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning", "warn":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
