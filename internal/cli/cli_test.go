package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mydehq/pagesel/internal/config"
	"github.com/mydehq/pagesel/internal/types"
	"github.com/mydehq/pagesel/internal/ui"
)

func useConfig(t *testing.T, format string) {
	t.Helper()
	logger = ui.NewLogger(io.Discard)
	c := config.DefaultGlobalConfig()
	c.Output.Format = format
	cfg = &c
	t.Cleanup(func() { cfg = nil })
}

func TestRunParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		format   string
		expected string
	}{
		{"single argument", []string{"1-5,4-10,7,15"}, "text", "1-10,15\n"},
		{"arguments joined", []string{"2-4", "5-"}, "text", "2-\n"},
		{"json output", []string{"10-"}, "json", `"canonical": "10-"`},
		{"yaml output", []string{"-3"}, "yaml", "canonical: 1-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, tt.format)

			var buf bytes.Buffer
			if err := runParse(&buf, tt.args); err != nil {
				t.Fatalf("runParse failed: %v", err)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestRunParse_Error(t *testing.T) {
	useConfig(t, "text")

	var buf bytes.Buffer
	err := runParse(&buf, []string{"1-2-3"})

	var ambiguous types.ErrAmbiguousRange
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected ErrAmbiguousRange, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no output expected on error, got %q", buf.String())
	}
}

func TestRunCheck(t *testing.T) {
	useConfig(t, "text")

	ranges, err := runCheck([]string{"10,9,8,7,6,5,4,3,2,1"})
	if err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}
	if describe(ranges) != "1-10" {
		t.Errorf("describe = %q, want 1-10", describe(ranges))
	}

	if _, err := runCheck([]string{"10-5"}); err == nil {
		t.Error("expected error for 10-5")
	}

	if describe(nil) != "empty selection" {
		t.Errorf("describe(nil) = %q", describe(nil))
	}
}

func TestReportCheck(t *testing.T) {
	useConfig(t, "text")

	tests := []struct {
		name      string
		selection string
		openEnded bool
	}{
		{"bounded", "1-3,7", false},
		{"open ended", "2-4,10-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger = ui.NewLogger(&buf)

			ranges, err := runCheck([]string{tt.selection})
			if err != nil {
				t.Fatalf("runCheck failed: %v", err)
			}
			reportCheck(ranges)

			out := buf.String()
			if !strings.Contains(out, ranges.String()) {
				t.Errorf("output %q does not contain %q", out, ranges.String())
			}
			if got := strings.Contains(out, "from=10"); got != tt.openEnded {
				t.Errorf("open-ended report = %v, want %v (output %q)", got, tt.openEnded, out)
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { cfg = nil })

	configPath := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"--config", configPath, "2-4,10-"})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		flagConfig = ""
	})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), `"canonical": "2-4,10-"`) {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		cfg = nil
	})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "pagesel ") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}
