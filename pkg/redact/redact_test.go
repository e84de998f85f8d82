package redact

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterDatum(t *testing.T) {
	cases := []struct {
		name      string
		fields    []string
		message   string
		separator string
		want      string
	}{
		{
			name:      "single field",
			fields:    []string{"password"},
			message:   "name=love;password=1234",
			separator: ";",
			want:      "name=love;password=***",
		},
		{
			name:      "multiple fields",
			fields:    []string{"email", "password"},
			message:   "email=a@x.com;password=1234;role=user",
			separator: ";",
			want:      "email=***;password=***;role=user",
		},
		{
			name:      "no matching field",
			fields:    []string{"ssn"},
			message:   "name=love;password=1234",
			separator: ";",
			want:      "name=love;password=1234",
		},
		{
			name:      "field at end of message",
			fields:    []string{"ip"},
			message:   "event=login;ip=10.0.0.1",
			separator: ";",
			want:      "event=login;ip=***",
		},
		{
			name:      "no fields",
			fields:    nil,
			message:   "password=1234",
			separator: ";",
			want:      "password=1234",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterDatum(tc.fields, "***", tc.message, tc.separator)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoggerRedactsPIIFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(log.New(&buf, "", 0), nil)

	logger.Printf("user registered; email=%s; password=%s", "a@x.com", "secret")

	out := buf.String()
	assert.NotContains(t, out, "a@x.com")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "email=***")
	assert.Contains(t, out, "password=***")
}

func TestLoggerCustomFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(log.New(&buf, "", 0), []string{"token"})

	logger.Printf("token=%s; email=%s", "abc", "a@x.com")

	out := buf.String()
	assert.Contains(t, out, "token=***")
	assert.Contains(t, out, "email=a@x.com")
}
