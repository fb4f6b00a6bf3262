package symbol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/observability"
)

func arrow() *Definition {
	return &Definition{
		Name: "arrow",
		BBox: BBox{Width: 10, Height: 4},
		Specs: Specs{
			"tip": {{X: 10, Y: 0, NormalAngle: 0}},
			Tail:  {{X: 0, Y: 1}, {X: 0, Y: 3}},
			Crown: {},
		},
	}
}

func captureDiagnostics(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetDiagnosticLogger(log.New(&buf))
	t.Cleanup(func() { SetDiagnosticLogger(nil) })
	return &buf
}

func TestGetAttachmentPoint(t *testing.T) {
	s := arrow()

	tests := []struct {
		name    string
		typ     AttachmentPointType
		idx     int
		want    PointWithNormal
		wantErr string
	}{
		{"tip", "tip", 0, PointWithNormal{X: 10, Y: 0, NormalAngle: 0}, ""},
		{"first tail", Tail, 0, PointWithNormal{X: 0, Y: 1}, ""},
		{"second tail", Tail, 1, PointWithNormal{X: 0, Y: 3}, ""},
		{"tip past end", "tip", 1, PointWithNormal{}, "Expected symbol arrow to have at least 2 tip attachment point(s)."},
		{"tail at count", Tail, 2, PointWithNormal{}, "Expected symbol arrow to have at least 3 tail attachment point(s)."},
		{"tail far past end", Tail, 102, PointWithNormal{}, "Expected symbol arrow to have at least 103 tail attachment point(s)."},
		{"empty type", Crown, 0, PointWithNormal{}, "Expected symbol arrow to have at least 1 crown attachment point(s)."},
		{"absent type", Horn, 0, PointWithNormal{}, "Expected symbol arrow to have at least 1 horn attachment point(s)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetAttachmentPoint(s, tt.typ, tt.idx)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("GetAttachmentPoint() error: %v", err)
				}
				if got != tt.want {
					t.Errorf("GetAttachmentPoint() = %+v, want %+v", got, tt.want)
				}
				return
			}

			var ape *AttachmentPointError
			if !errors.As(err, &ape) {
				t.Fatalf("GetAttachmentPoint() error = %v, want *AttachmentPointError", err)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetAttachmentPointNoSpecs(t *testing.T) {
	s := &Definition{Name: "blob"}

	for _, typ := range []AttachmentPointType{Anchor, Tail, "tip"} {
		for _, idx := range []int{0, 1, 50} {
			_, err := GetAttachmentPoint(s, typ, idx)
			var ape *AttachmentPointError
			if !errors.As(err, &ape) {
				t.Fatalf("GetAttachmentPoint(%s, %d) error = %v, want *AttachmentPointError", typ, idx, err)
			}
			if err.Error() != "Symbol blob has no specs." {
				t.Errorf("Error() = %q, want %q", err.Error(), "Symbol blob has no specs.")
			}
			if !apperr.Is(err, apperr.ErrCodeAttachmentPoint) {
				t.Errorf("code = %v, want %v", apperr.GetCode(err), apperr.ErrCodeAttachmentPoint)
			}
		}
	}
}

func TestGetAttachmentPointInvalidInput(t *testing.T) {
	if _, err := GetAttachmentPoint(nil, Tail, 0); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("nil definition error = %v, want INVALID_INPUT", err)
	}
	if _, err := GetAttachmentPoint(arrow(), Tail, -1); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("negative index error = %v, want INVALID_INPUT", err)
	}
}

func TestSafeGetAttachmentPointFound(t *testing.T) {
	buf := captureDiagnostics(t)
	s := arrow()

	got, err := SafeGetAttachmentPoint(s, Tail, 1)
	if err != nil {
		t.Fatalf("SafeGetAttachmentPoint() error: %v", err)
	}
	if got == nil {
		t.Fatal("SafeGetAttachmentPoint() = nil, want point")
	}

	strict, _ := GetAttachmentPoint(s, Tail, 1)
	if *got != strict {
		t.Errorf("SafeGetAttachmentPoint() = %+v, want %+v", *got, strict)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected diagnostic output: %q", buf.String())
	}
}

func TestSafeGetAttachmentPointMissing(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
		typ  AttachmentPointType
		idx  int
		msg  string
	}{
		{"no specs", &Definition{Name: "blob"}, Tail, 0, "Symbol blob has no specs."},
		{"index past end", arrow(), "tip", 1, "Expected symbol arrow to have at least 2 tip attachment point(s)."},
		{"absent type", arrow(), Leg, 0, "Expected symbol arrow to have at least 1 leg attachment point(s)."},
		{"blank type name", arrow(), "", 0, "Expected symbol arrow to have at least 1  attachment point(s)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureDiagnostics(t)

			got, err := SafeGetAttachmentPoint(tt.def, tt.typ, tt.idx)
			if err != nil {
				t.Fatalf("SafeGetAttachmentPoint() error: %v", err)
			}
			if got != nil {
				t.Errorf("SafeGetAttachmentPoint() = %+v, want nil", *got)
			}

			out := strings.TrimSpace(buf.String())
			if n := strings.Count(out, "\n") + 1; out == "" || n != 1 {
				t.Fatalf("diagnostic lines = %q, want exactly one", out)
			}
			if !strings.Contains(out, tt.msg) {
				t.Errorf("diagnostic = %q, want it to contain %q", out, tt.msg)
			}
		})
	}
}

func TestSafeGetAttachmentPointLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.WarnLevel)
	SetDiagnosticLogger(l)
	t.Cleanup(func() { SetDiagnosticLogger(nil) })

	if got, err := SafeGetAttachmentPoint(arrow(), Leg, 0); err != nil || got != nil {
		t.Fatalf("SafeGetAttachmentPoint() = %v, %v; want nil, nil", got, err)
	}
	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "leg attachment point") {
		t.Errorf("diagnostic = %q, want a WARN line naming the missing point", out)
	}
}

func TestSafeGetAttachmentPointPropagatesOtherErrors(t *testing.T) {
	buf := captureDiagnostics(t)

	got, err := SafeGetAttachmentPoint(arrow(), Tail, -1)
	if err == nil {
		t.Fatal("SafeGetAttachmentPoint() error = nil, want INVALID_INPUT")
	}
	if got != nil {
		t.Errorf("SafeGetAttachmentPoint() = %+v, want nil", *got)
	}
	var ape *AttachmentPointError
	if errors.As(err, &ape) {
		t.Error("negative index must not be reported as *AttachmentPointError")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected diagnostic output: %q", buf.String())
	}
}

type missCounter struct {
	observability.NoopLookupHooks
	misses int
}

func (m *missCounter) OnAttachmentMiss(string, string, int) { m.misses++ }

func TestSafeGetAttachmentPointFiresHook(t *testing.T) {
	captureDiagnostics(t)
	counter := &missCounter{}
	observability.SetLookupHooks(counter)
	defer observability.Reset()

	_, _ = SafeGetAttachmentPoint(arrow(), Horn, 0)
	_, _ = SafeGetAttachmentPoint(arrow(), Tail, 0)

	if counter.misses != 1 {
		t.Errorf("misses = %d, want 1", counter.misses)
	}
}

func TestAttachmentPoints(t *testing.T) {
	s := arrow()

	if got := AttachmentPointCount(s, Tail); got != 2 {
		t.Errorf("AttachmentPointCount(tail) = %d, want 2", got)
	}
	if got := AttachmentPointCount(s, Horn); got != 0 {
		t.Errorf("AttachmentPointCount(horn) = %d, want 0", got)
	}
	if got := AttachmentPoints(&Definition{Name: "blob"}, Tail); got != nil {
		t.Errorf("AttachmentPoints(no specs) = %v, want nil", got)
	}
	if got := AttachmentPoints(nil, Tail); got != nil {
		t.Errorf("AttachmentPoints(nil) = %v, want nil", got)
	}
}

func TestSpecsTypes(t *testing.T) {
	got := arrow().Specs.Types()
	want := []AttachmentPointType{Crown, Tail, "tip"}
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPointNormal(t *testing.T) {
	x, y := PointWithNormal{NormalAngle: 0}.Normal()
	if x != 1 || y != 0 {
		t.Errorf("Normal() = (%v, %v), want (1, 0)", x, y)
	}
}
