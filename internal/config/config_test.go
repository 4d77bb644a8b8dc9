package config

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/memory"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("sumbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Sizes, []int{100_000, 1_000_000, 10_000_000}) {
		t.Errorf("Sizes = %v", cfg.Sizes)
	}
	if !reflect.DeepEqual(cfg.Threads, []int{1, 4, 8, 10}) {
		t.Errorf("Threads = %v", cfg.Threads)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatText)
	}
	if cfg.GCMode != memory.GCModeAuto {
		t.Errorf("GCMode = %q, want auto", cfg.GCMode)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Seed != 0 || cfg.Quiet || cfg.Verbose || cfg.TUI {
		t.Errorf("unexpected non-default values: %+v", cfg)
	}
}

func TestParseConfig_DefaultsNotShared(t *testing.T) {
	cfg, err := ParseConfig("sumbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	cfg.Sizes[0] = 1
	if DefaultSizes[0] != 100_000 {
		t.Error("mutating a parsed config must not change DefaultSizes")
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"--sizes", "10, 1_000",
		"--threads=2,3",
		"--seed", "42",
		"--format", "csv",
		"--gc", "disabled",
		"--timeout", "30s",
		"-q",
		"--metrics-file", "/tmp/x.prom",
	}
	cfg, err := ParseConfig("sumbench", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := AppConfig{
		Sizes:       []int{10, 1000},
		Threads:     []int{2, 3},
		Seed:        42,
		Format:      FormatCSV,
		GCMode:      memory.GCModeDisabled,
		MetricsFile: "/tmp/x.prom",
		Timeout:     30 * time.Second,
		Quiet:       true,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("ParseConfig =\n%+v\nwant\n%+v", cfg, want)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero threads", []string{"--threads", "0,4"}},
		{"negative size", []string{"--sizes", "-5"}},
		{"bad format", []string{"--format", "xml"}},
		{"bad gc mode", []string{"--gc", "never"}},
		{"quiet and tui", []string{"--quiet", "--tui"}},
		{"positional args", []string{"extra"}},
		{"zero timeout", []string{"--timeout", "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("sumbench", tt.args, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error = %v, want ConfigError", err)
			}
		})
	}
}

func TestParseConfig_MalformedList(t *testing.T) {
	_, err := ParseConfig("sumbench", []string{"--sizes", "abc"}, io.Discard)
	if err == nil {
		t.Fatal("expected a parse error for --sizes abc")
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("sumbench", []string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SUMBENCH_SIZES", "6,12")
	t.Setenv("SUMBENCH_THREADS", "2")
	t.Setenv("SUMBENCH_FORMAT", "TABLE")
	t.Setenv("SUMBENCH_VERBOSE", "yes")
	t.Setenv("SUMBENCH_TIMEOUT", "1m")

	cfg, err := ParseConfig("sumbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Sizes, []int{6, 12}) {
		t.Errorf("Sizes = %v, want [6 12]", cfg.Sizes)
	}
	if !reflect.DeepEqual(cfg.Threads, []int{2}) {
		t.Errorf("Threads = %v, want [2]", cfg.Threads)
	}
	if cfg.Format != FormatTable {
		t.Errorf("Format = %q, want table", cfg.Format)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be enabled by SUMBENCH_VERBOSE=yes")
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m", cfg.Timeout)
	}
}

func TestParseConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv("SUMBENCH_THREADS", "2")
	t.Setenv("SUMBENCH_QUIET", "true")

	cfg, err := ParseConfig("sumbench", []string{"--threads", "16", "--quiet=false"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Threads, []int{16}) {
		t.Errorf("Threads = %v, want [16]", cfg.Threads)
	}
	if cfg.Quiet {
		t.Error("--quiet=false should win over SUMBENCH_QUIET")
	}
}

func TestParseConfig_InvalidEnv(t *testing.T) {
	t.Setenv("SUMBENCH_SEED", "not-a-number")

	_, err := ParseConfig("sumbench", nil, io.Discard)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, want ConfigError", err)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestJoinInts(t *testing.T) {
	if got := JoinInts([]int{1, 4, 8, 10}); got != "1,4,8,10" {
		t.Errorf("JoinInts = %q", got)
	}
}
