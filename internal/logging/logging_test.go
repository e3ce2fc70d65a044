package logging

import "testing"

func TestNew(t *testing.T) {
	for _, encoding := range []string{"json", "console"} {
		logger, err := New("info", encoding)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", encoding, err)
		}
		if logger == nil {
			t.Fatalf("expected logger instance")
		}
		if !logger.Core().Enabled(0) {
			t.Fatalf("expected info level to be enabled")
		}
		_ = logger.Sync()
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewInvalidEncoding(t *testing.T) {
	if _, err := New("info", "xml"); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}
