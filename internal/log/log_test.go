// ABOUTME: Tests for the leveled logger
// ABOUTME: Validates level filtering, prefixes, and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// capture redirects output for the duration of a test. Tests using it
// must not run in parallel since the logger is global.
func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	savedLevel := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  []string
		skip  []string
	}{
		{
			name:  "debug emits everything",
			level: LevelDebug,
			want:  []string{"[DEBUG] d 1", "[INFO] i 2", "[WARN] w 3", "[ERROR] e 4"},
		},
		{
			name:  "info suppresses debug",
			level: LevelInfo,
			want:  []string{"[INFO] i 2", "[WARN] w 3", "[ERROR] e 4"},
			skip:  []string{"[DEBUG]"},
		},
		{
			name:  "error only",
			level: LevelError,
			want:  []string{"[ERROR] e 4"},
			skip:  []string{"[DEBUG]", "[INFO]", "[WARN]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.level)

			Debug("d %d", 1)
			Info("i %d", 2)
			Warn("w %d", 3)
			Error("e %d", 4)

			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w+"\n") {
					t.Errorf("output %q missing %q", got, w)
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(got, s) {
					t.Errorf("output %q should not contain %q", got, s)
				}
			}
		})
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, slog.Level(100))

	Error("boom")
	if got := buf.String(); got != "[ERROR] boom\n" {
		t.Errorf("Error output = %q, want %q", got, "[ERROR] boom\n")
	}
}

func TestSetOutputNilRestoresStderr(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	if got := SetOutput(nil); got != &buf {
		t.Errorf("SetOutput(nil) returned %v, want the buffer", got)
	}
}
