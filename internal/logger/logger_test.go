package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "parsed roster",
			fields:  Fields{"members": 42},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "warn with fields",
			level:   LevelWarn,
			message: "dropped invalid rows",
			fields:  Fields{"count": 3},
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}

			if !logged {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if entry.Message != tt.message {
				t.Errorf("entry message = %q, want %q", entry.Message, tt.message)
			}
			if entry.Level != string(tt.level) {
				t.Errorf("entry level = %q, want %q", entry.Level, tt.level)
			}
			if tt.err != nil && entry.Error != tt.err.Error() {
				t.Errorf("entry error = %q, want %q", entry.Error, tt.err.Error())
			}
		})
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()

	c.Incr("rows.dropped")
	c.Add("rows.dropped", 2)
	c.Incr("fetches")

	snapshot := c.Snapshot()
	if snapshot["rows.dropped"] != 3 {
		t.Errorf("rows.dropped = %d, want 3", snapshot["rows.dropped"])
	}
	if snapshot["fetches"] != 1 {
		t.Errorf("fetches = %d, want 1", snapshot["fetches"])
	}

	// Snapshot is a copy, not a view.
	snapshot["fetches"] = 99
	if c.Snapshot()["fetches"] != 1 {
		t.Error("mutating a snapshot changed the counter set")
	}
}
