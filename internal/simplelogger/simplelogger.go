// Package simplelogger is a tiny opt-in debug logger. Nothing is written unless the CELLDIFF_LOG_FILE environment variable names a writable file, so
// normal runs stay silent and tests can point the log at a temp file.
package simplelogger

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const envVar = "CELLDIFF_LOG_FILE"

var mu sync.Mutex

// Enabled reports whether logging is switched on for this process.
func Enabled() bool {
	return os.Getenv(envVar) != ""
}

// Logf appends one timestamped, printf-formatted line to the log file. It is a no-op when logging is disabled, and it never reports errors: a debug
// log that cannot be opened is not worth failing an operation over.
func Logf(format string, args ...any) {
	path := os.Getenv(envVar)
	if path == "" {
		return
	}

	line := fmt.Sprintf(format, args...)
	if n := len(line); n == 0 || line[n-1] != '\n' {
		line += "\n"
	}
	line = time.Now().Format("15:04:05.000") + " " + line

	// One writer at a time keeps lines from interleaving within this process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line)
}
