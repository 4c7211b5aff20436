package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Output: &buf}).WithComponent(ComponentStorage)

	logger.Info("Ledger file created", FieldPath, "/tmp/x.csv")

	out := buf.String()
	if !strings.Contains(out, "component=storage") {
		t.Fatalf("missing component in %q", out)
	}
	if strings.Count(out, "component=") != 1 {
		t.Fatalf("component should appear once in %q", out)
	}
	if !strings.Contains(out, "path=/tmp/x.csv") {
		t.Fatalf("missing path in %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Output: &buf})

	logger.Debug("hidden")
	logger.Warn("shown", FieldYear, 2024)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %q", out)
	}
	if !strings.Contains(out, `"year":2024`) || !strings.Contains(out, `"component":"app"`) {
		t.Fatalf("unexpected json output %q", out)
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().WithOperation(OpAppend).WithMonth(2024, 3).WithError(nil)
	if _, ok := f[FieldError]; ok {
		t.Fatalf("nil error should not add a field")
	}
	if len(f.ToSlice()) != 6 {
		t.Fatalf("expected 3 key/value pairs, got %v", f.ToSlice())
	}
}
