package pkg

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"trace", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseLogLevel(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseLogLevel(%q) expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLogLevel(%q) unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLogLevelRoundTrip(t *testing.T) {
	orig := GetLogLevel()
	defer SetLogLevel(orig)

	SetLogLevel(slog.LevelDebug)
	if got := GetLogLevel(); got != slog.LevelDebug {
		t.Errorf("GetLogLevel() = %v, want %v", got, slog.LevelDebug)
	}
}

func TestLogOutput_ComponentAttr(t *testing.T) {
	origLogger := DefaultLogger
	origLevel := GetLogLevel()
	defer func() {
		SetLogger(origLogger)
		SetLogLevel(origLevel)
	}()

	var buf bytes.Buffer
	SetLogLevel(slog.LevelInfo)
	SetLogOutput(&buf, LogFormatText)

	LogInfo(ComponentMonitor, "event monitor started", "detail", 42)

	out := buf.String()
	if !strings.Contains(out, "component=monitor") {
		t.Errorf("output missing component attribute: %q", out)
	}
	if !strings.Contains(out, "detail=42") {
		t.Errorf("output missing kv attribute: %q", out)
	}
}

func TestLogOutput_JSONFormat(t *testing.T) {
	origLogger := DefaultLogger
	origLevel := GetLogLevel()
	defer func() {
		SetLogger(origLogger)
		SetLogLevel(origLevel)
	}()

	var buf bytes.Buffer
	SetLogLevel(slog.LevelInfo)
	SetLogOutput(&buf, LogFormatJSON)

	LogWarn(ComponentRegistry, "enumeration failed", "context", "c1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["component"] != "registry" {
		t.Errorf("component = %v, want %q", record["component"], "registry")
	}
	if record["msg"] != "enumeration failed" {
		t.Errorf("msg = %v, want %q", record["msg"], "enumeration failed")
	}
}

func TestLogBelowLevelSuppressed(t *testing.T) {
	origLogger := DefaultLogger
	origLevel := GetLogLevel()
	defer func() {
		SetLogger(origLogger)
		SetLogLevel(origLevel)
	}()

	var buf bytes.Buffer
	SetLogLevel(slog.LevelWarn)
	SetLogOutput(&buf, LogFormatText)

	LogDebug(ComponentHAL, "should not appear")

	if buf.Len() != 0 {
		t.Errorf("debug output not suppressed: %q", buf.String())
	}
}
