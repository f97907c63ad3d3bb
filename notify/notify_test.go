package notify

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.AppName != "axtrust" {
		t.Errorf("AppName = %q, expected %q", config.AppName, "axtrust")
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, expected %v", config.Timeout, 5*time.Second)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	notifier, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}
	defer func() { _ = notifier.Close() }()
}

func TestNewWithCustomConfig(t *testing.T) {
	notifier, err := New(Config{AppName: "axtrust-test", Timeout: time.Second})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = notifier.Close() }()
}
