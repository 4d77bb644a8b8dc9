package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
)

var resultLine = regexp.MustCompile(`^Threads: \d+ \| Sum: \d+ \| Time: \d+\.\d{9} seconds$`)

func newApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"sumbench"}, args...), &errBuf)
	if err != nil {
		t.Fatalf("New(%v) error = %v (stderr %q)", args, err, errBuf.String())
	}
	return a, &errBuf
}

func TestNew(t *testing.T) {
	a, _ := newApp(t, "--sizes", "10,20", "--threads", "1,2", "--seed", "3", "--format", "csv")
	if got := config.JoinInts(a.Config.Sizes); got != "10,20" {
		t.Errorf("Sizes = %s", got)
	}
	if a.Config.Seed != 3 || a.Config.Format != config.FormatCSV {
		t.Errorf("Config = %+v", a.Config)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		help bool
	}{
		{name: "help", args: []string{"--help"}, help: true},
		{name: "bad threads", args: []string{"--threads", "0"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "bad format", args: []string{"--format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(append([]string{"sumbench"}, tt.args...), &bytes.Buffer{})
			if err == nil {
				t.Fatal("New() error = nil")
			}
			if IsHelpError(err) != tt.help {
				t.Errorf("IsHelpError(%v) = %v, want %v", err, !tt.help, tt.help)
			}
		})
	}
}

func TestRun_Text(t *testing.T) {
	a, _ := newApp(t, "--sizes", "1000,5000", "--threads", "1,2,3", "--no-color")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want 0\n%s", code, out.String())
	}

	text := out.String()
	if !strings.HasPrefix(text, "Hardware concurrency: ") {
		t.Errorf("missing hardware line:\n%s", text)
	}
	for _, want := range []string{"\nArray size: 1000\n", "\nArray size: 5000\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q", want)
		}
	}

	var results int
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Threads:") {
			results++
			if !resultLine.MatchString(line) {
				t.Errorf("malformed result line %q", line)
			}
		}
	}
	if results != 6 {
		t.Errorf("got %d result lines, want 6", results)
	}
}

func TestRun_SeedIsDeterministic(t *testing.T) {
	run := func() string {
		a, _ := newApp(t, "--sizes", "2000", "--threads", "1", "--seed", "99", "-q", "--no-color")
		var out bytes.Buffer
		if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
			t.Fatalf("Run() = %d", code)
		}
		line := strings.TrimSpace(out.String())
		return line[:strings.Index(line, " | Time:")]
	}
	if first, second := run(), run(); first != second {
		t.Errorf("seeded runs differ: %q vs %q", first, second)
	}
}

func TestRun_CSV(t *testing.T) {
	a, _ := newApp(t, "--sizes", "100", "--threads", "1,4", "--format", "csv")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "Size,Threads") {
		t.Errorf("unexpected csv output:\n%s", out.String())
	}
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumbench.prom")
	a, _ := newApp(t, "--sizes", "100", "--threads", "1,2", "--metrics-file", path, "-q")
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{"sumbench_trials_total 2", `sumbench_trial_duration_seconds{size="100",threads="2"}`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file missing %q", want)
		}
	}
}

func TestRun_MetricsFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "m.prom")
	a, errBuf := newApp(t, "--sizes", "10", "--threads", "1", "--metrics-file", path, "-q", "--no-color")
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errBuf.String(), "Error:") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	a, _ := newApp(t, "--sizes", "10", "--threads", "1", "--no-color")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := a.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRun_Timeout(t *testing.T) {
	a, errBuf := newApp(t, "--sizes", "10", "--threads", "1", "--timeout", "1ns", "--no-color")
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorTimeout {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if !strings.Contains(errBuf.String(), "timed out") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"--version"}, true},
		{[]string{"--sizes", "10", "-V"}, true},
		{[]string{"-v"}, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "sumbench "+Version) {
		t.Errorf("PrintVersion() = %q", buf.String())
	}
}

func TestIsHelpError(t *testing.T) {
	if IsHelpError(errors.New("x")) {
		t.Error("plain error reported as help")
	}
}
