package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
	logDirPerm    = 0o750
	logFilePerm   = 0o600
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// SessionFilename returns the log filename for a session ID.
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

// ParseSessionFilename extracts the session ID from a log filename.
func ParseSessionFilename(filename string) (string, bool) {
	if !strings.HasPrefix(filename, sessionPrefix) || !strings.HasSuffix(filename, sessionSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionPrefix), sessionSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}

// OpenSessionLog creates the log file for a new TUI session in dir and
// prunes older session logs beyond keep. keep <= 0 disables pruning.
func OpenSessionLog(dir, sessionID string, keep int) (*os.File, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, SessionFilename(sessionID))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}

	if keep > 0 {
		if err := PruneSessionLogs(dir, keep); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to prune session logs: %v\n", err)
		}
	}
	return file, nil
}

// PruneSessionLogs keeps the newest keep session logs in dir. Session IDs
// start with a timestamp, so lexical order is chronological.
func PruneSessionLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := ParseSessionFilename(entry.Name()); ok {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
