package applog

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/ripple-grid/internal/config"
)

func TestSetupDisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := filepath.Join(t.TempDir(), "logs")
	if f := Setup(false, dir); f != nil {
		f.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestSetupEnabledWithDebug(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := filepath.Join(t.TempDir(), "logs")
	f := Setup(true, dir)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}

	log.Println("Test log message")
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, config.LogFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("Expected log file to contain test message, got %q", data)
	}
}
