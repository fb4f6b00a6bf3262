package symbol

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/observability"
)

// AttachmentPointError reports that a symbol does not declare the requested
// attachment point. It is the only error [SafeGetAttachmentPoint] absorbs.
type AttachmentPointError struct {
	Symbol string
	Type   AttachmentPointType
	Index  int

	// NoSpecs is true when the symbol has no attachment data at all.
	NoSpecs bool
}

// Error returns the human-readable lookup failure.
func (e *AttachmentPointError) Error() string {
	if e.NoSpecs {
		return fmt.Sprintf("Symbol %s has no specs.", e.Symbol)
	}
	return fmt.Sprintf("Expected symbol %s to have at least %d %s attachment point(s).",
		e.Symbol, e.Index+1, e.Type)
}

// Code returns the error code for this error type.
func (e *AttachmentPointError) Code() apperr.Code {
	return apperr.ErrCodeAttachmentPoint
}

// GetAttachmentPoint returns the idx-th (0-based) attachment point of type t.
//
// It returns an [*AttachmentPointError] when the symbol has no specs, or when
// fewer than idx+1 points of type t are declared. A nil definition or a
// negative index is a caller bug and yields an INVALID_INPUT error instead.
func GetAttachmentPoint(s *Definition, t AttachmentPointType, idx int) (PointWithNormal, error) {
	if s == nil {
		return PointWithNormal{}, apperr.New(apperr.ErrCodeInvalidInput, "symbol definition is nil")
	}
	if idx < 0 {
		return PointWithNormal{}, apperr.New(apperr.ErrCodeInvalidInput,
			"attachment point index must be non-negative, got %d", idx)
	}
	if s.Specs == nil {
		return PointWithNormal{}, &AttachmentPointError{Symbol: s.Name, Type: t, Index: idx, NoSpecs: true}
	}
	points := s.Specs[t]
	if len(points) <= idx {
		return PointWithNormal{}, &AttachmentPointError{Symbol: s.Name, Type: t, Index: idx}
	}
	return points[idx], nil
}

// SafeGetAttachmentPoint is like [GetAttachmentPoint] but treats a missing
// attachment point as an expected outcome: the failure is written to the
// diagnostic logger and nil is returned with a nil error.
//
// Every other error is returned unchanged.
func SafeGetAttachmentPoint(s *Definition, t AttachmentPointType, idx int) (*PointWithNormal, error) {
	p, err := GetAttachmentPoint(s, t, idx)
	if err == nil {
		return &p, nil
	}

	var ape *AttachmentPointError
	if !errors.As(err, &ape) {
		return nil, err
	}
	diagnostics().Warn(ape.Error())
	observability.Lookup().OnAttachmentMiss(ape.Symbol, string(ape.Type), ape.Index)
	return nil, nil
}

// AttachmentPoints returns all declared points of type t, or nil.
func AttachmentPoints(s *Definition, t AttachmentPointType) []PointWithNormal {
	if s == nil || s.Specs == nil {
		return nil
	}
	return s.Specs[t]
}

// AttachmentPointCount returns how many points of type t the symbol declares.
func AttachmentPointCount(s *Definition, t AttachmentPointType) int {
	return len(AttachmentPoints(s, t))
}

var (
	diagMu     sync.RWMutex
	diagLogger *log.Logger
)

// SetDiagnosticLogger replaces the logger used by [SafeGetAttachmentPoint].
// Passing nil restores the charmbracelet/log default logger.
func SetDiagnosticLogger(l *log.Logger) {
	diagMu.Lock()
	defer diagMu.Unlock()
	diagLogger = l
}

func diagnostics() *log.Logger {
	diagMu.RLock()
	defer diagMu.RUnlock()
	if diagLogger != nil {
		return diagLogger
	}
	return log.Default()
}
