package logparse

import "strings"

// Pino numeric levels.
const (
	LevelTrace = 10
	LevelDebug = 20
	LevelInfo  = 30
	LevelWarn  = 40
	LevelError = 50
	LevelFatal = 60
)

// NormalizeSeverity converts various severity level formats to consistent all caps short forms.
func NormalizeSeverity(severity string) string {
	normalized := strings.ToUpper(strings.TrimSpace(severity))

	switch normalized {
	case "TRACE", "TRAC", "TRC":
		return "TRACE"
	case "DEBUG", "DEBU", "DBG", "DEB":
		return "DEBUG"
	case "INFO", "INFORMATION", "INF":
		return "INFO"
	case "WARN", "WARNING", "WRNG", "WRN":
		return "WARN"
	case "ERROR", "ERR", "ERRO":
		return "ERROR"
	case "FATAL", "FATL", "FTL", "CRITICAL", "CRIT", "CRT":
		return "FATAL"
	case "PANIC", "PNC":
		return "FATAL"
	default:
		if len(normalized) >= 4 {
			prefix := normalized[:4]
			switch prefix {
			case "INFO":
				return "INFO"
			case "WARN":
				return "WARN"
			case "ERRO":
				return "ERROR"
			case "DEBU":
				return "DEBUG"
			case "TRAC":
				return "TRACE"
			case "FATA", "CRIT":
				return "FATAL"
			}
		}
		return "INFO"
	}
}

// ParseLevel maps a severity name to its pino numeric level.
// Unknown names map to info.
func ParseLevel(name string) int {
	switch NormalizeSeverity(name) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// PinoLevelToString converts pino/bunyan numeric levels to strings.
func PinoLevelToString(level int) string {
	switch {
	case level <= LevelTrace:
		return "TRACE"
	case level <= LevelDebug:
		return "DEBUG"
	case level <= LevelInfo:
		return "INFO"
	case level <= LevelWarn:
		return "WARN"
	case level <= LevelError:
		return "ERROR"
	default:
		return "FATAL"
	}
}
