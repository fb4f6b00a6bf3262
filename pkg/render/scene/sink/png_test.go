package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/sigil/pkg/render/scene"
)

func TestRenderPNG(t *testing.T) {
	svg := RenderSVG(testSymbol(), scene.NewContext())

	data, err := RenderPNG(svg, 2)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("bounds = %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}

func TestRenderPNGErrors(t *testing.T) {
	tests := []struct {
		name  string
		svg   string
		scale float64
	}{
		{"empty viewBox", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`, 1},
		{"too large", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"></svg>`, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RenderPNG([]byte(tt.svg), tt.scale); err == nil {
				t.Error("RenderPNG() error = nil, want error")
			}
		})
	}
}
