// Package redact obfuscates PII field values in key=value formatted log
// messages before they reach any log sink.
package redact

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// PIIFields are the field names redacted by default.
var PIIFields = []string{"email", "phone", "ssn", "password", "ip"}

const (
	// Redaction replaces each matched field value.
	Redaction = "***"
	// Separator delimits key=value pairs in log messages.
	Separator = ";"
)

// FilterDatum returns message with the value of every listed field replaced
// by redaction. Fields are matched as "name=value" pairs terminated by
// separator or end of message.
func FilterDatum(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 {
		return message
	}
	pattern := regexp.MustCompile(
		"(" + strings.Join(fields, "|") + ")=[^" + regexp.QuoteMeta(separator) + "]*",
	)
	return pattern.ReplaceAllString(message, "${1}="+redaction)
}

// Logger wraps a log.Logger and redacts PII fields from every message.
type Logger struct {
	logger *log.Logger
	fields []string
}

// NewLogger returns a redacting wrapper around logger. A nil fields slice
// redacts the default PIIFields.
func NewLogger(logger *log.Logger, fields []string) *Logger {
	if fields == nil {
		fields = PIIFields
	}
	return &Logger{logger: logger, fields: fields}
}

// Printf formats like log.Printf, then redacts before writing.
func (l *Logger) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.logger.Print(FilterDatum(l.fields, Redaction, msg, Separator))
}
