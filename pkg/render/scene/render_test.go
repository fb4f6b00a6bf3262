package scene

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/sigil/pkg/symbol"
)

func testSymbol() *symbol.Definition {
	return &symbol.Definition{
		Name: "eye",
		BBox: symbol.BBox{Width: 100, Height: 100},
		Layers: []symbol.Element{
			symbol.Group(symbol.Props{ID: "outer", Transform: "translate(1 2)"},
				symbol.Path(symbol.Props{
					ID:          "lid",
					D:           "M0 0 L10 10",
					Fill:        symbol.FillReplacementColor,
					Stroke:      symbol.StrokeReplacementColor,
					StrokeWidth: symbol.Width(5),
				}),
				symbol.Path(symbol.Props{D: "M1 1", Fill: "#123456"}),
			),
			symbol.Path(symbol.Props{
				D:      "M5 5",
				Stroke: symbol.FillReplacementColor,
				Attrs:  map[string]string{"stroke-linecap": "round"},
			}),
		},
		Specs: symbol.Specs{symbol.Tail: {{X: 1, Y: 2}}},
	}
}

func TestResolveColor(t *testing.T) {
	ctx := NewContext(WithStroke("red"), WithFill("blue"))

	tests := []struct {
		in, want string
	}{
		{symbol.StrokeReplacementColor, "red"},
		{symbol.FillReplacementColor, "blue"},
		{"#123456", "#123456"},
		{"none", "none"},
		{"", ""},
	}

	for _, tt := range tests {
		got := ResolveColor(ctx, tt.in)
		if got != tt.want {
			t.Errorf("ResolveColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.in != symbol.StrokeReplacementColor && tt.in != symbol.FillReplacementColor {
			if again := ResolveColor(ctx, got); again != got {
				t.Errorf("ResolveColor not idempotent for %q: %q", tt.in, again)
			}
		}
	}
}

func TestRenderRoot(t *testing.T) {
	def := testSymbol()
	root := Render(def, NewContext())

	if root.Kind != KindGroup {
		t.Errorf("root.Kind = %q, want %q", root.Kind, KindGroup)
	}
	if root.Name != "eye" {
		t.Errorf("root.Name = %q, want eye", root.Name)
	}
	if len(root.Children) != len(def.Layers) {
		t.Fatalf("len(children) = %d, want %d", len(root.Children), len(def.Layers))
	}
}

func TestRenderPreservesShape(t *testing.T) {
	def := testSymbol()
	root := Render(def, NewContext())

	var want []symbol.Tag
	def.Walk(func(_ int, el symbol.Element) { want = append(want, el.Tag) })

	var got []Kind
	for _, layer := range root.Children {
		layer.Walk(func(_ int, n Node) { got = append(got, n.Kind) })
	}

	if len(got) != len(want) {
		t.Fatalf("node count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i]) != string(want[i]) {
			t.Errorf("node[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if d := root.Children[0].Children[1].D; d != "M1 1" {
		t.Errorf("second child d = %q, want M1 1", d)
	}
	if tr := root.Children[0].Transform; tr != "translate(1 2)" {
		t.Errorf("transform = %q, want translate(1 2)", tr)
	}
	if lc := root.Children[1].Attrs["stroke-linecap"]; lc != "round" {
		t.Errorf("attrs not carried over: %v", root.Children[1].Attrs)
	}
}

func TestRenderResolvesColors(t *testing.T) {
	root := Render(testSymbol(), NewContext(WithStroke("red"), WithFill("blue")))

	lid := root.Children[0].Children[0]
	if lid.Fill != "blue" || lid.Stroke != "red" {
		t.Errorf("lid fill/stroke = %q/%q, want blue/red", lid.Fill, lid.Stroke)
	}
	if got := root.Children[0].Children[1].Fill; got != "#123456" {
		t.Errorf("literal fill = %q, want #123456", got)
	}
	if got := root.Children[1].Stroke; got != "blue" {
		t.Errorf("fill placeholder used as stroke = %q, want blue", got)
	}

	root.Walk(func(_ int, n Node) {
		for _, c := range []string{n.Fill, n.Stroke} {
			if symbol.IsReplacementColor(c) {
				t.Errorf("placeholder %q left in output", c)
			}
		}
	})
}

func TestRenderUniformStrokeWidth(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		root := Render(testSymbol(), NewContext(WithUniformStrokeWidth(2)))

		lid := root.Children[0].Children[0]
		if lid.StrokeWidth == nil || *lid.StrokeWidth != 2 {
			t.Errorf("StrokeWidth = %v, want 2", lid.StrokeWidth)
		}
		if lid.VectorEffect != NonScalingStroke {
			t.Errorf("VectorEffect = %q, want %q", lid.VectorEffect, NonScalingStroke)
		}

		plain := root.Children[0].Children[1]
		if plain.StrokeWidth != nil || plain.VectorEffect != "" {
			t.Errorf("element without width got %v/%q", plain.StrokeWidth, plain.VectorEffect)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		root := Render(testSymbol(), NewContext(WithoutUniformStrokeWidth()))

		lid := root.Children[0].Children[0]
		if lid.StrokeWidth == nil || *lid.StrokeWidth != 5 {
			t.Errorf("StrokeWidth = %v, want 5", lid.StrokeWidth)
		}
		if lid.VectorEffect != "" {
			t.Errorf("VectorEffect = %q, want empty", lid.VectorEffect)
		}
	})
}

func TestRenderDropsIDs(t *testing.T) {
	def := testSymbol()
	def.Layers[1].Props.Attrs = map[string]string{"id": "tail-id", "stroke-linecap": "round"}

	root := Render(def, NewContext())
	root.Walk(func(_ int, n Node) {
		if _, ok := n.Attrs["id"]; ok {
			t.Errorf("id attribute leaked: %v", n.Attrs)
		}
	})

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"outer", "lid", "tail-id"} {
		if strings.Contains(string(data), id) {
			t.Errorf("encoded scene contains id %q: %s", id, data)
		}
	}
}

func TestRenderFiltersPassThroughAttrs(t *testing.T) {
	def := &symbol.Definition{
		Name: "valve",
		Layers: []symbol.Element{
			symbol.Path(symbol.Props{
				D:           "M0 0",
				StrokeWidth: symbol.Width(4),
				Attrs: map[string]string{
					"id":             "secret",
					"ID":             "shouting",
					"fill":           symbol.FillReplacementColor,
					"stroke-width":   "9",
					"vector-effect":  "none",
					"stop-color":     symbol.StrokeReplacementColor,
					"stroke-linecap": "round",
				},
			}),
		},
	}

	n := Render(def, NewContext(WithStroke("#ff0000"), WithUniformStrokeWidth(2))).Children[0]

	want := map[string]string{"stop-color": "#ff0000", "stroke-linecap": "round"}
	if len(n.Attrs) != len(want) {
		t.Errorf("Attrs = %v, want %v", n.Attrs, want)
	}
	for k, v := range want {
		if n.Attrs[k] != v {
			t.Errorf("Attrs[%q] = %q, want %q", k, n.Attrs[k], v)
		}
	}
	if n.StrokeWidth == nil || *n.StrokeWidth != 2 || n.VectorEffect != NonScalingStroke {
		t.Errorf("uniform width not applied: width=%v effect=%q", n.StrokeWidth, n.VectorEffect)
	}
	if len(def.Layers[0].Props.Attrs) != 7 {
		t.Error("definition attrs were modified")
	}
}

func TestRenderDoesNotMutateDefinition(t *testing.T) {
	def := testSymbol()
	root := Render(def, NewContext(WithUniformStrokeWidth(2)))
	*root.Children[0].Children[0].StrokeWidth = 42
	root.Children[1].Attrs["stroke-linecap"] = "square"

	lid := def.Layers[0].Children[0].Props
	if *lid.StrokeWidth != 5 || lid.ID != "lid" || lid.Fill != symbol.FillReplacementColor {
		t.Errorf("definition was mutated: %+v", lid)
	}
	if def.Layers[1].Props.Attrs["stroke-linecap"] != "round" {
		t.Error("definition attrs alias rendered attrs")
	}
}

func TestRenderSpecsOverlay(t *testing.T) {
	tests := []struct {
		name      string
		showSpecs bool
		specs     symbol.Specs
		want      int
	}{
		{"hidden", false, symbol.Specs{symbol.Tail: {{}}}, 2},
		{"shown", true, symbol.Specs{symbol.Tail: {{}}}, 3},
		{"shown without specs", true, nil, 2},
		{"shown with empty specs", true, symbol.Specs{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testSymbol()
			def.Specs = tt.specs
			root := Render(def, NewContext(WithShowSpecs(tt.showSpecs)))
			if len(root.Children) != tt.want {
				t.Errorf("len(children) = %d, want %d", len(root.Children), tt.want)
			}
		})
	}
}

func TestRenderWithOverlay(t *testing.T) {
	called := 0
	marker := Node{Kind: KindGroup, Attrs: map[string]string{"class": "custom"}}
	overlay := OverlayFunc(func(specs symbol.Specs) Node {
		called++
		return marker
	})

	root := Render(testSymbol(), NewContext(WithShowSpecs(true)), WithOverlay(overlay))
	if called != 1 {
		t.Fatalf("overlay called %d times, want 1", called)
	}
	last := root.Children[len(root.Children)-1]
	if last.Attrs["class"] != "custom" {
		t.Errorf("last child = %+v, want custom overlay", last)
	}
}

func TestRenderEmptyLayers(t *testing.T) {
	root := Render(&symbol.Definition{Name: "empty"}, NewContext())
	if root.Kind != KindGroup || len(root.Children) != 0 {
		t.Errorf("Render(empty) = %+v, want empty group", root)
	}
}

func TestRenderHandlesEveryTag(t *testing.T) {
	for _, tag := range symbol.Tags() {
		t.Run(string(tag), func(t *testing.T) {
			def := &symbol.Definition{
				Name:   "one",
				Layers: []symbol.Element{{Tag: tag}},
			}
			root := Render(def, NewContext())
			if string(root.Children[0].Kind) != string(tag) {
				t.Errorf("Kind = %q, want %q", root.Children[0].Kind, tag)
			}
		})
	}
}

func TestRenderUnknownTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render() with unknown tag did not panic")
		}
	}()
	Render(&symbol.Definition{Layers: []symbol.Element{{Tag: "circle"}}}, NewContext())
}

func TestMarkerOverlay(t *testing.T) {
	specs := symbol.Specs{
		symbol.Tail:   {{X: 0, Y: 0}, {X: 5, Y: 5}},
		symbol.Anchor: {{X: 1, Y: 1}},
		"wing":        {{X: 2, Y: 2}},
	}
	n := MarkerOverlay{}.Overlay(specs)

	if len(n.Children) != 3 {
		t.Fatalf("groups = %d, want 3", len(n.Children))
	}
	wantOrder := []string{"anchor", "tail", "wing"}
	for i, g := range n.Children {
		if g.Attrs["data-spec-type"] != wantOrder[i] {
			t.Errorf("group[%d] = %q, want %q", i, g.Attrs["data-spec-type"], wantOrder[i])
		}
	}
	if got := len(n.Children[1].Children); got != 4 {
		t.Errorf("tail markers = %d, want 4 (circle and tick per point)", got)
	}
	if got := n.Children[2].Children[0].Stroke; got != unknownMarkerColor {
		t.Errorf("unknown type color = %q, want %q", got, unknownMarkerColor)
	}
	if got := MarkerColor(symbol.Tail); got == unknownMarkerColor {
		t.Error("known type uses the fallback color")
	}
}

func TestTickPath(t *testing.T) {
	got := tickPath(symbol.PointWithNormal{X: 10, Y: 0, NormalAngle: 0}, 5)
	if want := "M 10.00 0.00 L 15.00 0.00"; got != want {
		t.Errorf("tickPath() = %q, want %q", got, want)
	}
}
