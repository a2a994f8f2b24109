package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/foxbash/internal/replay"
)

func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), exitCode(err)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestConfigValidate(t *testing.T) {
	good := writeFile(t, "config.yaml", "window:\n  x: 4\n")
	if out, rc := execute(t, "config", "validate", "--path", good); rc != 0 || !strings.Contains(out, "config: ok") {
		t.Fatalf("validate rc=%d out=%q", rc, out)
	}

	bad := writeFile(t, "config.yaml", "window:\n  width: 3\n")
	if _, rc := execute(t, "config", "validate", "--path", bad); rc != 1 {
		t.Fatalf("validate bad config rc=%d, want 1", rc)
	}
}

func TestConfigPrintDefaults(t *testing.T) {
	out, rc := execute(t, "config", "print", "--defaults")
	if rc != 0 {
		t.Fatalf("rc=%d", rc)
	}
	if !strings.Contains(out, "columns: 80") || !strings.Contains(out, "title: FoxBash Terminal") {
		t.Fatalf("unexpected defaults:\n%s", out)
	}
}

func TestConfigExplain(t *testing.T) {
	path := writeFile(t, "config.yaml", "log_level: debug\n")
	out, rc := execute(t, "config", "explain", "--path", path, "log_level")
	if rc != 0 {
		t.Fatalf("rc=%d", rc)
	}
	if !strings.Contains(out, "source: file:") || !strings.Contains(out, ":1:") || !strings.Contains(out, "debug") {
		t.Fatalf("unexpected explain output:\n%s", out)
	}

	out, rc = execute(t, "config", "explain", "--path", path, "window.max_height")
	if rc != 0 || !strings.Contains(out, "source: default:grid") {
		t.Fatalf("rc=%d out=%q", rc, out)
	}
}

func TestReplayCommand(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "cell: {width: 8, height: 16}\n")
	script := writeFile(t, "drag.yaml", `
events:
  - press: {x: 19, y: 21}
  - move: {x: 83, y: 85}
  - release: {button: secondary}
`)
	out, rc := execute(t, "replay", "--path", cfg, script)
	if rc != 0 {
		t.Fatalf("rc=%d out=%q", rc, out)
	}

	var res replay.Result
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode trace: %v\n%s", err, out)
	}
	if res.Phase != "idle" || res.Final.Left != 10 || res.Final.Top != 5 {
		t.Fatalf("final = %s %v", res.Phase, res.Final)
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"unknown command", []string{"frobnicate"}, 2},
		{"unknown flag", []string{"config", "print", "--nope"}, 2},
		{"explain without path", []string{"config", "explain"}, 2},
		{"replay without script", []string{"replay"}, 2},
		{"bad backend", []string{"run", "--path", filepath.Join(t.TempDir(), "none.yaml"), "--backend", "wayland"}, 2},
		{"missing script", []string{"replay", "--path", filepath.Join(t.TempDir(), "none.yaml"), filepath.Join(t.TempDir(), "none.yaml")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, rc := execute(t, tt.args...); rc != tt.want {
				t.Fatalf("rc=%d, want %d", rc, tt.want)
			}
		})
	}
}
