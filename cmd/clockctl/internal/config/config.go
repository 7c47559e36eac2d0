package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/vectornator/clocks/pkg/clock"
)

// FileName is the project configuration file shared with the drift CLI.
const FileName = "drift.yaml"

// DefaultAssetsDir is where the app keeps fonts/ and images/.
const DefaultAssetsDir = "assets"

// Config represents the optional drift.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Engine EngineConfig `yaml:"engine"`
	Clock  clock.Config `yaml:"clock"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name   string `yaml:"name,omitempty"`
	ID     string `yaml:"id,omitempty"`
	Assets string `yaml:"assets,omitempty"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	Version string `yaml:"version,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	AppID         string
	EngineVersion string
	// AssetsDir is absolute.
	AssetsDir string
	Clock     clock.Config
	// ClockSource names where Clock came from: drift.yaml, the bundled
	// clock.yaml, or defaults.
	ClockSource string
}

// LoadOptional reads drift.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads drift.yaml (if present) and resolves defaults.
//
// The clock settings come from the clock: section of drift.yaml when it is
// present, otherwise from clock.yaml at the root of the assets directory.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	engineVersion, err := resolveEngineVersion(cfg.Engine.Version)
	if err != nil {
		return nil, err
	}

	assetsDir := strings.TrimSpace(cfg.App.Assets)
	if assetsDir == "" {
		assetsDir = DefaultAssetsDir
	}
	if !filepath.IsAbs(assetsDir) {
		assetsDir = filepath.Join(dir, assetsDir)
	}

	clk, source, err := resolveClock(cfg.Clock, assetsDir)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		AppID:         appID,
		EngineVersion: engineVersion,
		AssetsDir:     assetsDir,
		Clock:         clk,
		ClockSource:   source,
	}, nil
}

func resolveClock(cfg clock.Config, assetsDir string) (clock.Config, string, error) {
	if cfg != (clock.Config{}) {
		if err := cfg.Validate(); err != nil {
			return clock.Config{}, "", fmt.Errorf("invalid clock section in %s: %w", FileName, err)
		}
		return cfg.WithDefaults(), FileName, nil
	}

	if _, err := os.Stat(filepath.Join(assetsDir, clock.ConfigFile)); err != nil {
		return clock.DefaultConfig(), "defaults", nil
	}
	bundled, err := clock.LoadConfig(os.DirFS(assetsDir))
	if err != nil {
		return clock.Config{}, "", err
	}
	return bundled, clock.ConfigFile, nil
}

// resolveEngineVersion accepts "latest" or a semantic version with or
// without the leading "v".
func resolveEngineVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "latest" {
		return "latest", nil
	}
	canonical := v
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return "", fmt.Errorf("engine.version must be \"latest\" or a semantic version (got %q)", v)
	}
	return canonical, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(dir)
}

// FindProjectRootFrom walks up from dir to find go.mod.
func FindProjectRootFrom(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "clock_app"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return fmt.Sprintf("com.example.%s", sanitizeSegment(appName, true))
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}

	var pathParts []string
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		pathParts = append(pathParts, p)
	}

	segments := append(host, pathParts...)
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment, i > 0)
	}

	return strings.Join(segments, ".")
}

func sanitizeSegment(segment string, allowLeadingDigit bool) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		segment = "app"
	}

	var out []rune
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= '0' && r <= '9':
			out = append(out, r)
		default:
			// Bundle identifiers only keep lowercase letters and digits.
		}
	}

	if len(out) == 0 {
		out = []rune("app")
	}

	if !allowLeadingDigit && out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}

	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		if segment[0] == '_' {
			return fmt.Errorf("app.id segments cannot start with '_' (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
