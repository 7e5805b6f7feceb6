package diag

import (
	"fortio.org/log"
)

// LogSink writes diagnostics to the process logger as structured entries.
type LogSink struct{}

// Report logs d at the level matching its severity.
func (LogSink) Report(d Diagnostic) {
	log.S(Level(d.Severity), d.Message,
		log.Str("code", d.Code),
		log.Str("subject", d.Subject))
}

// Level maps a severity onto the logger's levels.
func Level(s Severity) log.Level {
	switch s {
	case SeverityError:
		return log.Error
	case SeverityWarning:
		return log.Warning
	default:
		return log.Info
	}
}
