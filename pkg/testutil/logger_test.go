package testutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewTestLogger(buf)

	logger.Debug("probe", "key", "value")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("logger output = %q, want debug record", buf.String())
	}

	if NewTestLogger(nil) == nil {
		t.Error("NewTestLogger(nil) = nil")
	}
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	if logger == nil {
		t.Fatal("DiscardLogger returned nil")
	}
	logger.Debug("dropped")
	logger.Error("dropped", "key", "value")
}
