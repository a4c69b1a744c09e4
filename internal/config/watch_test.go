package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	path := writeFile(t, "duopong.toml", "ball_speed = 9.0\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("ball_speed = 3.0\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != want {
			t.Errorf("expected event for %s, got %s", want, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_ReportsFinalContent(t *testing.T) {
	path := writeFile(t, "duopong.toml", "ball_speed = 9.0\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	// Truncate then write, the way many editors save
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to truncate file: %v", err)
	}
	if err := os.WriteFile(path, []byte("ball_speed = 3.0\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case got := <-w.Events:
		s, err := LoadSettings(got)
		if err != nil {
			t.Fatalf("failed to load %s: %v", got, err)
		}
		if s.BallSpeed != 3 {
			t.Errorf("expected ball speed 3 once reported, got %f", s.BallSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	select {
	case got := <-w.Events:
		t.Errorf("expected a single event for both writes, got another for %s", got)
	case <-time.After(5 * debounce):
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	path := writeFile(t, "duopong.toml", "")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("unexpected error on first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("unexpected error on second close: %v", err)
	}
}
