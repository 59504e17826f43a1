package bootstrap

import "log"

type AuditLogger interface {
	Event(name, detail string)
}

type stdoutAuditLogger struct{}

func NewStdoutAuditLogger() AuditLogger {
	return &stdoutAuditLogger{}
}

func (l *stdoutAuditLogger) Event(name, detail string) {
	log.Printf("[AUDIT] %s: %s", name, detail)
}
