// Package assets loads the fonts and images a clock view draws with.
//
// Assets are looked up by name in an [fs.FS], mirroring an app bundle:
//
//	fonts/<name>.ttf | fonts/<name>.otf
//	images/<name>.png | .jpg | .jpeg | .webp
//
// A name that cannot be found or decoded yields a [*ConfigurationError].
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

var (
	fontDirs  = []string{"fonts", "."}
	fontExts  = []string{".ttf", ".otf"}
	imageDirs = []string{"images", "."}
	imageExts = []string{".png", ".jpg", ".jpeg", ".webp"}
	errNoFS   = errors.New("no asset bundle")
	errNoName = errors.New("asset name required")
)

// Bundle resolves assets by name.
type Bundle struct {
	fsys fs.FS
}

// NewBundle wraps fsys. A nil fsys produces a bundle in which every
// lookup fails with a ConfigurationError.
func NewBundle(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

// Sub returns a bundle rooted at dir, for app assets embedded under a
// directory (e.g., //go:embed assets).
func (b *Bundle) Sub(dir string) (*Bundle, error) {
	if b.fsys == nil {
		return nil, errNoFS
	}
	sub, err := fs.Sub(b.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return &Bundle{fsys: sub}, nil
}

// FS returns the underlying file system.
func (b *Bundle) FS() fs.FS {
	return b.fsys
}

// resolve finds the first existing path for name across dirs and exts.
// A name that already carries one of exts is tried as-is first.
func (b *Bundle) resolve(kind Kind, name string, dirs, exts []string) (string, error) {
	if b == nil || b.fsys == nil {
		return "", &ConfigurationError{Asset: name, Kind: kind, Err: errNoFS}
	}
	if name == "" {
		return "", &ConfigurationError{Asset: name, Kind: kind, Err: errNoName}
	}
	var candidates []string
	for _, dir := range dirs {
		for _, ext := range exts {
			if path.Ext(name) == ext {
				candidates = append(candidates, path.Join(dir, name))
			}
		}
		for _, ext := range exts {
			candidates = append(candidates, path.Join(dir, name+ext))
		}
	}
	for _, p := range candidates {
		info, err := fs.Stat(b.fsys, p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", &ConfigurationError{Asset: name, Kind: kind, Err: fs.ErrNotExist}
}
