package symbol

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apperr "github.com/matzehuels/sigil/pkg/errors"
)

// Validate checks that a definition is well formed: a safe name, a
// non-negative bounding box, known element tags and finite attachment
// points. Decoders call it before handing a definition to anyone else.
func (d Definition) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.By(symbolName)),
		validation.Field(&d.BBox),
		validation.Field(&d.Layers),
		validation.Field(&d.Specs, validation.By(validSpecs)),
	)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidSymbol, err, "symbol %q", d.Name)
	}
	return nil
}

// Validate checks the bounding box dimensions.
func (b BBox) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Width, validation.Min(0.0)),
		validation.Field(&b.Height, validation.Min(0.0)),
	)
}

// Validate checks the element and, recursively, its children.
func (e Element) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Tag, validation.Required, validation.In(TagGroup, TagPath)),
		validation.Field(&e.Props),
		validation.Field(&e.Children),
	)
}

// Validate checks the presentational properties.
func (p Props) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.StrokeWidth, validation.Min(0.0)),
		validation.Field(&p.Attrs, validation.By(passThroughAttrs)),
	)
}

func passThroughAttrs(value any) error {
	attrs, _ := value.(map[string]string)
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		if IsReservedAttr(k) {
			return fmt.Errorf("attribute %q is reserved; use the typed property", k)
		}
	}
	return nil
}

func symbolName(value any) error {
	name, _ := value.(string)
	if err := apperr.ValidateSymbolName(name); err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			return errors.New(e.Message)
		}
		return err
	}
	return nil
}

func validSpecs(value any) error {
	specs, _ := value.(Specs)
	for t, points := range specs {
		if t == "" {
			return errors.New("attachment point type cannot be empty")
		}
		for i, p := range points {
			if !finite(p.X) || !finite(p.Y) || !finite(p.NormalAngle) {
				return fmt.Errorf("%s[%d] has a non-finite coordinate", t, i)
			}
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
