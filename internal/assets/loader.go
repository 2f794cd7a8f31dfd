// Package assets provides the LaTeX document templates bundled with deckgen
// and a loader abstraction so callers can override them from disk.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

//go:embed templates/*.tmpl
var templates embed.FS

// Loader loads LaTeX document templates by name.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// LoadTemplate loads a template by name (without the .tex.tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// assetNamePattern restricts names to safe identifier characters so a name
// can never traverse out of the asset directory.
var assetNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateAssetName rejects names with path separators or other unsafe characters.
func ValidateAssetName(name string) error {
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// EmbeddedLoader loads templates compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an embedded template by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".tex.tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// DirLoader loads templates from <base>/<name>.tex.tmpl on disk.
type DirLoader struct {
	base string
}

// NewDirLoader creates a DirLoader rooted at base.
func NewDirLoader(base string) *DirLoader {
	return &DirLoader{base: base}
}

// LoadTemplate loads a filesystem template by name.
func (d *DirLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	path := filepath.Join(d.base, name+".tex.tmpl")
	content, err := os.ReadFile(path) // #nosec G304 -- base is user-chosen
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
	}
	return string(content), nil
}

// Compile-time interface checks.
var (
	_ Loader = (*EmbeddedLoader)(nil)
	_ Loader = (*DirLoader)(nil)
)
