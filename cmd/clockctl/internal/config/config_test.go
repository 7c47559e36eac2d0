package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vectornator/clocks/pkg/clock"
)

func writeProject(t *testing.T, modulePath, driftYAML string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module " + modulePath + "\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatal(err)
	}
	if driftYAML != "" {
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(driftYAML), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "github.com/vectornator/clocks/clockapp", "")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if r.AppName != "clockapp" {
		t.Errorf("AppName = %q, want %q", r.AppName, "clockapp")
	}
	if r.AppID != "com.github.vectornator.clocks.clockapp" {
		t.Errorf("AppID = %q", r.AppID)
	}
	if r.EngineVersion != "latest" {
		t.Errorf("EngineVersion = %q, want latest", r.EngineVersion)
	}
	if r.AssetsDir != filepath.Join(dir, DefaultAssetsDir) {
		t.Errorf("AssetsDir = %q", r.AssetsDir)
	}
	if r.Clock != clock.DefaultConfig() || r.ClockSource != "defaults" {
		t.Errorf("Clock = %+v from %s, want defaults", r.Clock, r.ClockSource)
	}
}

func TestResolveDriftYAML(t *testing.T) {
	dir := writeProject(t, "example.com/clock", `
app:
  name: Wall Clock
  id: com.example.wallclock
  assets: bundle
engine:
  version: 0.13.0
clock:
  speed_ratio: 2
  font: Inter-Bold
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if r.AppName != "Wall Clock" || r.AppID != "com.example.wallclock" {
		t.Errorf("app = %q (%q)", r.AppName, r.AppID)
	}
	if r.EngineVersion != "v0.13.0" {
		t.Errorf("EngineVersion = %q, want v0.13.0", r.EngineVersion)
	}
	if r.AssetsDir != filepath.Join(dir, "bundle") {
		t.Errorf("AssetsDir = %q", r.AssetsDir)
	}
	want := clock.Config{SpeedRatio: 2, Font: "Inter-Bold"}.WithDefaults()
	if r.Clock != want || r.ClockSource != FileName {
		t.Errorf("Clock = %+v from %s, want %+v", r.Clock, r.ClockSource, want)
	}
}

func TestResolveBundledClockConfig(t *testing.T) {
	dir := writeProject(t, "example.com/clock", "")
	assets := filepath.Join(dir, DefaultAssetsDir)
	if err := os.MkdirAll(assets, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, clock.ConfigFile), []byte("speed_ratio: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if r.Clock.SpeedRatio != 60 || r.ClockSource != clock.ConfigFile {
		t.Errorf("Clock = %+v from %s", r.Clock, r.ClockSource)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		drift string
		want  string
	}{
		{"bad yaml", "app: [", "failed to parse drift.yaml"},
		{"bad engine version", "engine:\n  version: banana\n", "engine.version"},
		{"bad app id", "app:\n  id: noDots\n", "app.id"},
		{"digit segment", "app:\n  id: com.1example\n", "cannot start with a digit"},
		{"bad clock", "clock:\n  speed_ratio: -4\n", "invalid clock section"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, "example.com/clock", tt.drift)
			_, err := Resolve(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("expected error without go.mod")
	}
}

func TestFindProjectRootFrom(t *testing.T) {
	dir := writeProject(t, "example.com/clock", "")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := FindProjectRootFrom(nested)
	if err != nil {
		t.Fatalf("FindProjectRootFrom() error: %v", err)
	}
	if got != dir {
		t.Errorf("root = %q, want %q", got, dir)
	}
}

func TestDefaultAppID(t *testing.T) {
	tests := []struct {
		module, name, want string
	}{
		{"github.com/acme/clock-app", "clock-app", "com.github.acme.clockapp"},
		{"localclock", "localclock", "com.example.localclock"},
		{"example.com/9lives", "9lives", "com.example.9lives"},
	}
	for _, tt := range tests {
		if got := defaultAppID(tt.module, tt.name); got != tt.want {
			t.Errorf("defaultAppID(%q) = %q, want %q", tt.module, got, tt.want)
		}
	}
}

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		in         string
		allowDigit bool
		want       string
	}{
		{"My_App", true, "myapp"},
		{"123", false, "a123"},
		{"***", true, "app"},
		{"", true, "app"},
	}
	for _, tt := range tests {
		if got := sanitizeSegment(tt.in, tt.allowDigit); got != tt.want {
			t.Errorf("sanitizeSegment(%q, %v) = %q, want %q", tt.in, tt.allowDigit, got, tt.want)
		}
	}
}
