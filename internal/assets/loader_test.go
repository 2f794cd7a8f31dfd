package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	t.Run("bundled template", func(t *testing.T) {
		t.Parallel()
		content, err := NewEmbeddedLoader().LoadTemplate("beamer")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(content, `\documentclass`) {
			t.Error("beamer template missing documentclass")
		}
		if !strings.Contains(content, "<< .Body >>") {
			t.Error("beamer template missing body placeholder")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()
		_, err := NewEmbeddedLoader().LoadTemplate("nope")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("got %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewEmbeddedLoader().LoadTemplate("../secrets")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Fatalf("got %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestDirLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.tex.tmpl"), []byte("\\custom"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := NewDirLoader(dir).LoadTemplate("custom")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if content != "\\custom" {
		t.Errorf("content = %q", content)
	}

	if _, err := NewDirLoader(dir).LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("got %v, want ErrTemplateNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"beamer", "my-theme", "theme_2", "A1"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "../up", "a/b", "a.b", "name with space", `a\b`}
	for _, name := range invalid {
		if err := ValidateAssetName(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", name, err)
		}
	}
}
