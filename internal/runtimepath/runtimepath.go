// Package runtimepath resolves per-user locations foxbash writes to.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const logName = "foxbash.log"

// LogPath returns where the terminal frontend logs when no log file is
// given, in order of preference:
//
//	$XDG_STATE_HOME/foxbash/foxbash.log
//	~/.local/state/foxbash/foxbash.log
//	$XDG_RUNTIME_DIR/foxbash/foxbash.log
//	<temp dir>/foxbash-<uid>/foxbash.log
//
// The directory is not created here; logging.OpenFile does that.
func LogPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "foxbash", logName)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "foxbash", logName)
	}
	if rt := os.Getenv("XDG_RUNTIME_DIR"); rt != "" {
		return filepath.Join(rt, "foxbash", logName)
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("foxbash-%d", os.Getuid()), logName)
}
