package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Name string `yaml:"name"`
		}
		if err := Unmarshal([]byte("name: deckgen"), &out); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if out.Name != "deckgen" {
			t.Errorf("Name = %q", out.Name)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()
		var out any
		if err := Unmarshal(nil, &out); !errors.Is(err, ErrNilData) {
			t.Fatalf("got %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
			t.Fatalf("got %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()
		big := []byte("name: " + strings.Repeat("x", MaxInputSize))
		var out any
		if err := Unmarshal(big, &out); !errors.Is(err, ErrInputTooLarge) {
			t.Fatalf("got %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Name string `yaml:"name"`
		}
		if err := Unmarshal([]byte("name: a\nextra: b"), &out); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var out struct {
		Name string `yaml:"name"`
	}
	err := UnmarshalStrict([]byte("name: a\nextra: b"), &out)
	if err == nil {
		t.Fatal("UnmarshalStrict() should reject unknown fields")
	}
}
