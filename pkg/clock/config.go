package clock

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFont is the font asset used for the hour numerals.
	DefaultFont = "Orbitron-Bold"
	// DefaultBackground is the image asset shown behind the dial.
	DefaultBackground = "fi-0"
	// DefaultNumeralSize is the numeral font size in points.
	DefaultNumeralSize = 20
	// DefaultBlurSigma is the blur applied to the background image.
	DefaultBlurSigma = 12
	// MinSpeedRatio keeps the hour pointer's scaled period within a
	// time.Duration.
	MinSpeedRatio = 1e-5

	// ConfigFile is the bundle file LoadConfig reads.
	ConfigFile = "clock.yaml"
)

// Config controls asset names and playback speed of a clock view.
// Zero fields take their defaults.
type Config struct {
	// SpeedRatio scales playback: 2 runs every pointer twice as fast.
	SpeedRatio  float64 `yaml:"speed_ratio,omitempty"`
	Font        string  `yaml:"font,omitempty"`
	Background  string  `yaml:"background,omitempty"`
	NumeralSize float64 `yaml:"numeral_size,omitempty"`
	BlurSigma   float64 `yaml:"blur_sigma,omitempty"`
}

// DefaultConfig returns the configuration of a real-time clock with the
// bundled assets.
func DefaultConfig() Config {
	return Config{
		SpeedRatio:  1,
		Font:        DefaultFont,
		Background:  DefaultBackground,
		NumeralSize: DefaultNumeralSize,
		BlurSigma:   DefaultBlurSigma,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.SpeedRatio == 0 {
		c.SpeedRatio = d.SpeedRatio
	}
	if c.Font == "" {
		c.Font = d.Font
	}
	if c.Background == "" {
		c.Background = d.Background
	}
	if c.NumeralSize == 0 {
		c.NumeralSize = d.NumeralSize
	}
	if c.BlurSigma == 0 {
		c.BlurSigma = d.BlurSigma
	}
	return c
}

// Validate reports settings that cannot produce a working clock.
func (c Config) Validate() error {
	var errs []error
	if math.IsNaN(c.SpeedRatio) || math.IsInf(c.SpeedRatio, 0) || c.SpeedRatio < 0 {
		errs = append(errs, fmt.Errorf("speed_ratio must be a positive number (got %v)", c.SpeedRatio))
	}
	if c.SpeedRatio > 0 && c.SpeedRatio < MinSpeedRatio {
		errs = append(errs, fmt.Errorf("speed_ratio must be at least %g (got %v)", MinSpeedRatio, c.SpeedRatio))
	}
	if math.IsNaN(c.NumeralSize) || c.NumeralSize < 0 {
		errs = append(errs, fmt.Errorf("numeral_size cannot be negative (got %v)", c.NumeralSize))
	}
	if math.IsNaN(c.BlurSigma) || c.BlurSigma < 0 {
		errs = append(errs, fmt.Errorf("blur_sigma cannot be negative (got %v)", c.BlurSigma))
	}
	return errors.Join(errs...)
}

// ParseConfig decodes a YAML clock configuration and applies defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse clock config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid clock config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// LoadConfig reads ConfigFile from fsys. A missing file yields the defaults.
func LoadConfig(fsys fs.FS) (Config, error) {
	if fsys == nil {
		return DefaultConfig(), nil
	}
	data, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	return ParseConfig(data)
}
