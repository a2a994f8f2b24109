package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestLogPath(t *testing.T) {
	state := t.TempDir()
	home := t.TempDir()
	runtime := t.TempDir()

	tests := []struct {
		name    string
		state   string
		home    string
		runtime string
		want    string
	}{
		{"state home", state, home, runtime, filepath.Join(state, "foxbash", "foxbash.log")},
		{"home", "", home, runtime, filepath.Join(home, ".local", "state", "foxbash", "foxbash.log")},
		{"runtime dir", "", "", runtime, filepath.Join(runtime, "foxbash", "foxbash.log")},
		{"temp dir", "", "", "", filepath.Join(os.TempDir(), fmt.Sprintf("foxbash-%d", os.Getuid()), "foxbash.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_STATE_HOME", tt.state)
			t.Setenv("HOME", tt.home)
			t.Setenv("XDG_RUNTIME_DIR", tt.runtime)

			if got := LogPath(); got != tt.want {
				t.Fatalf("LogPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
