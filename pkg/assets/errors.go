package assets

import "fmt"

// Kind identifies the type of a bundled asset.
type Kind int

const (
	// KindFont is a TrueType or OpenType font.
	KindFont Kind = iota
	// KindImage is a raster image.
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindImage:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ConfigurationError reports a named asset that is missing from the bundle
// or cannot be decoded.
type ConfigurationError struct {
	// Asset is the name the asset was requested by (e.g., "Orbitron-Bold").
	Asset string
	Kind  Kind
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("assets: %s %q: %v", e.Kind, e.Asset, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
