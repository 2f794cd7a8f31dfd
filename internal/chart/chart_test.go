package chart

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

// decodePNG asserts data is a valid PNG and returns its dimensions.
func decodePNG(t *testing.T, data []byte) (w, h int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestBar(t *testing.T) {
	t.Parallel()

	data, err := Bar([]string{"Mon", "Tue", "Wed"}, []float64{3, 7, 5}, Options{Title: "Visits"})
	if err != nil {
		t.Fatalf("Bar() error = %v", err)
	}
	w, h := decodePNG(t, data)
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("dimensions = %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}
}

func TestBar_NegativeValues(t *testing.T) {
	t.Parallel()

	// Bars below zero must not panic or invert the plot.
	if _, err := Bar([]string{"a", "b"}, []float64{-2, 4}, Options{}); err != nil {
		t.Fatalf("Bar() with negative value error = %v", err)
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	data, err := Line([]float64{0, 1, 2}, []float64{1, 4, 9}, Options{XLabel: "t", YLabel: "d"})
	if err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	decodePNG(t, data)
}

func TestLine_SinglePoint(t *testing.T) {
	t.Parallel()

	// A single point gives a degenerate x span; the range widening must hold.
	if _, err := Line([]float64{5}, []float64{5}, Options{}); err != nil {
		t.Fatalf("Line() single point error = %v", err)
	}
}

func TestScatter(t *testing.T) {
	t.Parallel()

	data, err := Scatter([]float64{1, 2, 3}, []float64{2, 1, 3}, Options{})
	if err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	decodePNG(t, data)
}

func TestPie(t *testing.T) {
	t.Parallel()

	data, err := Pie([]string{"yes", "no"}, []float64{70, 30}, Options{Title: "Poll"})
	if err != nil {
		t.Fatalf("Pie() error = %v", err)
	}
	decodePNG(t, data)
}

func TestChartErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fn      func() error
		wantErr error
	}{
		{"bar empty", func() error { _, err := Bar(nil, nil, Options{}); return err }, ErrEmptySeries},
		{"bar mismatch", func() error { _, err := Bar([]string{"a"}, []float64{1, 2}, Options{}); return err }, ErrSeriesMismatch},
		{"line empty", func() error { _, err := Line(nil, nil, Options{}); return err }, ErrEmptySeries},
		{"line mismatch", func() error { _, err := Line([]float64{1}, []float64{1, 2}, Options{}); return err }, ErrSeriesMismatch},
		{"pie empty", func() error { _, err := Pie(nil, nil, Options{}); return err }, ErrEmptySeries},
		{"pie mismatch", func() error { _, err := Pie([]string{"a"}, []float64{1, 2}, Options{}); return err }, ErrSeriesMismatch},
		{"pie negative", func() error { _, err := Pie([]string{"a", "b"}, []float64{1, -1}, Options{}); return err }, ErrNegativeValue},
		{"pie all zero", func() error { _, err := Pie([]string{"a"}, []float64{0}, Options{}); return err }, ErrEmptySeries},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.fn(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions_CustomSize(t *testing.T) {
	t.Parallel()

	data, err := Bar([]string{"a"}, []float64{1}, Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatal(err)
	}
	w, h := decodePNG(t, data)
	if w != 400 || h != 300 {
		t.Errorf("dimensions = %dx%d, want 400x300", w, h)
	}
}

func TestValueRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"positive span", 2, 10},
		{"includes zero", 0, 0},
		{"negative span", -5, -1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lo, hi := valueRange(tt.lo, tt.hi)
			if lo > 0 {
				t.Errorf("range [%v, %v] must include zero", lo, hi)
			}
			if hi <= lo {
				t.Errorf("range [%v, %v] collapsed", lo, hi)
			}
		})
	}
}

func TestFmtNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		tt := tt
		if got := fmtNum(tt.in); got != tt.want {
			t.Errorf("fmtNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
