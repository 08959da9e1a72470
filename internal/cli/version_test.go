package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "1.2.3", "abc1234", "2026-01-02"
	v, c, d := resolveVersionInfo()
	if v != "1.2.3" || c != "abc1234" || d != "2026-01-02" {
		t.Errorf("expected ldflags values, got %q %q %q", v, c, d)
	}
}

func TestResolveVersionInfo_DevFallback(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "dev", "unknown", "unknown"
	v, c, d := resolveVersionInfo()

	if v == "" {
		t.Error("version should not be empty")
	}
	// In a test binary, ReadBuildInfo returns test module info.
	t.Logf("resolved: version=%s commit=%s date=%s", v, c, d)
}

func TestVersionFlag(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()
	version, commit, date = "0.4.0", "deadbee", "2026-03-04"

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil, got: %v", err)
	}

	want := "charlint 0.4.0 (deadbee, 2026-03-04) " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
	if stdout.String() != want {
		t.Errorf("expected %q, got %q", want, stdout.String())
	}
	if strings.Contains(stdout.String(), "Usage:") {
		t.Error("--version must not be treated as a usage error")
	}
}
