package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("loaded database")
	logger.Info("hello")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %q", buf.String())
	}

	logger.Warn("could not resolve path 'a/b'")
	got := buf.String()
	if !strings.Contains(got, "could not resolve path 'a/b'") {
		t.Fatalf("warning missing from output %q", got)
	}
	if !strings.Contains(got, Prefix) {
		t.Fatalf("prefix %q missing from output %q", Prefix, got)
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("loaded database")
	if !strings.Contains(buf.String(), "loaded database") {
		t.Fatalf("debug message missing from output %q", buf.String())
	}
}
