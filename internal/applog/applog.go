// Package applog routes the standard logger to a file in debug mode and
// discards it otherwise.
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/iburimskiy/ripple-grid/internal/config"
)

// Setup configures the standard logger. With debug off all output is
// discarded and nil is returned. With debug on, logs go to
// dir/ripplegrid.log and the caller must close the returned file.
func Setup(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, config.LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== ripplegrid started (pid %d) ===", os.Getpid())
	return f
}
