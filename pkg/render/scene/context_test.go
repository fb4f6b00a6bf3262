package scene

import "testing"

func TestNewContextDefaults(t *testing.T) {
	c := NewContext()
	if c.Stroke != "#000000" {
		t.Errorf("Stroke = %q, want #000000", c.Stroke)
	}
	if c.Fill != "#ffffff" {
		t.Errorf("Fill = %q, want #ffffff", c.Fill)
	}
	if c.ShowSpecs {
		t.Error("ShowSpecs = true, want false")
	}
	if c.UniformStrokeWidth == nil || *c.UniformStrokeWidth != 1 {
		t.Errorf("UniformStrokeWidth = %v, want 1", c.UniformStrokeWidth)
	}
}

func TestNewContextOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []ContextOption
		check func(t *testing.T, c Context)
	}{
		{"stroke", []ContextOption{WithStroke("red")}, func(t *testing.T, c Context) {
			if c.Stroke != "red" || c.Fill != "#ffffff" {
				t.Errorf("got %+v, want stroke red with default fill", c)
			}
		}},
		{"fill", []ContextOption{WithFill("blue")}, func(t *testing.T, c Context) {
			if c.Fill != "blue" || c.Stroke != "#000000" {
				t.Errorf("got %+v, want fill blue with default stroke", c)
			}
		}},
		{"specs", []ContextOption{WithShowSpecs(true)}, func(t *testing.T, c Context) {
			if !c.ShowSpecs {
				t.Error("ShowSpecs = false, want true")
			}
		}},
		{"width", []ContextOption{WithUniformStrokeWidth(3)}, func(t *testing.T, c Context) {
			if c.UniformStrokeWidth == nil || *c.UniformStrokeWidth != 3 {
				t.Errorf("UniformStrokeWidth = %v, want 3", c.UniformStrokeWidth)
			}
		}},
		{"no width", []ContextOption{WithoutUniformStrokeWidth()}, func(t *testing.T, c Context) {
			if c.UniformStrokeWidth != nil {
				t.Errorf("UniformStrokeWidth = %v, want nil", *c.UniformStrokeWidth)
			}
		}},
		{"later wins", []ContextOption{WithStroke("red"), WithStroke("green")}, func(t *testing.T, c Context) {
			if c.Stroke != "green" {
				t.Errorf("Stroke = %q, want green", c.Stroke)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewContext(tt.opts...))
		})
	}
}

func TestNewContextIndependent(t *testing.T) {
	a := NewContext()
	b := NewContext()
	*a.UniformStrokeWidth = 7
	if *b.UniformStrokeWidth != 1 {
		t.Errorf("contexts share width storage: got %v, want 1", *b.UniformStrokeWidth)
	}
}

func TestSwapColors(t *testing.T) {
	c := NewContext(WithStroke("#111111"), WithFill("#eeeeee"), WithShowSpecs(true), WithUniformStrokeWidth(2))

	s := SwapColors(c)
	if s.Stroke != "#eeeeee" || s.Fill != "#111111" {
		t.Errorf("SwapColors() = stroke %q fill %q, want swapped", s.Stroke, s.Fill)
	}
	if s.ShowSpecs != c.ShowSpecs || *s.UniformStrokeWidth != *c.UniformStrokeWidth {
		t.Errorf("SwapColors() changed other fields: %+v", s)
	}

	back := SwapColors(s)
	if back.Stroke != c.Stroke || back.Fill != c.Fill || back.ShowSpecs != c.ShowSpecs ||
		*back.UniformStrokeWidth != *c.UniformStrokeWidth {
		t.Errorf("SwapColors(SwapColors(c)) = %+v, want %+v", back, c)
	}

	if c.Stroke != "#111111" || c.Fill != "#eeeeee" {
		t.Error("SwapColors() mutated its input")
	}
	*s.UniformStrokeWidth = 9
	if *c.UniformStrokeWidth != 2 {
		t.Error("SwapColors() result aliases the input width")
	}
}

func TestNoFillIfShowingSpecs(t *testing.T) {
	tests := []struct {
		name      string
		showSpecs bool
		wantFill  string
	}{
		{"showing", true, "none"},
		{"hidden", false, "#abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext(WithFill("#abcdef"), WithStroke("#123456"), WithShowSpecs(tt.showSpecs))
			got := NoFillIfShowingSpecs(c)
			if got.Fill != tt.wantFill {
				t.Errorf("Fill = %q, want %q", got.Fill, tt.wantFill)
			}
			if got.Stroke != c.Stroke || got.ShowSpecs != c.ShowSpecs {
				t.Errorf("NoFillIfShowingSpecs() changed other fields: %+v", got)
			}
			if c.Fill != "#abcdef" {
				t.Error("NoFillIfShowingSpecs() mutated its input")
			}
		})
	}
}

func TestCloneNilWidth(t *testing.T) {
	c := NewContext(WithoutUniformStrokeWidth())
	if got := c.Clone(); got.UniformStrokeWidth != nil {
		t.Errorf("Clone().UniformStrokeWidth = %v, want nil", *got.UniformStrokeWidth)
	}
}
