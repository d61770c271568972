// Package logging provides the optional debug log.
package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

var (
	mu       sync.Mutex
	debugLog *log.Logger
	logFile  *os.File
)

// Open starts writing debug output to path. An empty path leaves logging off.
func Open(path, prefix string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	debugLog = log.New(f, prefix, log.Ltime|log.Lshortfile)
	return nil
}

// Enabled reports whether a debug log is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debugLog != nil
}

// Printf writes to the debug log when it is open.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if debugLog != nil {
		debugLog.Output(2, fmt.Sprintf(format, args...))
	}
}

// Close stops debug logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	debugLog = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
