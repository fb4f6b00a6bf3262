package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewAndWrap(t *testing.T) {
	err := New(ErrCodeInvalidColor, "invalid color %q", "#12")
	if got, want := err.Error(), `INVALID_COLOR: invalid color "#12"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("permission denied")
	wrapped := Wrap(ErrCodeInvalidPath, cause, "read symbols/arrow.yaml")
	if got, want := wrapped.Error(), "INVALID_PATH: read symbols/arrow.yaml: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false")
	}
}

type lookupError struct{}

func (lookupError) Error() string { return "Symbol arrow has no specs." }
func (lookupError) Code() Code    { return ErrCodeAttachmentPoint }

func TestGetCodeAndIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeInvalidSymbol, "x"), ErrCodeInvalidSymbol},
		{"outermost code wins", Wrap(ErrCodeSymbolNotFound, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeSymbolNotFound},
		{"wrapped by fmt", fmt.Errorf("load: %w", New(ErrCodeInvalidFormat, "x")), ErrCodeInvalidFormat},
		{"code method", fmt.Errorf("lookup: %w", lookupError{}), ErrCodeAttachmentPoint},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(err, %q) = false", tt.want)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is(err, UNSUPPORTED) = true")
			}
		})
	}
}

func TestCodeKind(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{ErrCodeInvalidInput, KindInvalid},
		{ErrCodeInvalidFormat, KindInvalid},
		{ErrCodeInvalidSymbol, KindInvalid},
		{ErrCodeInvalidColor, KindInvalid},
		{ErrCodeInvalidPath, KindInvalid},
		{ErrCodeNotFound, KindNotFound},
		{ErrCodeSymbolNotFound, KindNotFound},
		{ErrCodeFileNotFound, KindNotFound},
		{ErrCodeAttachmentPoint, KindNotFound},
		{ErrCodeUnsupported, KindUnsupported},
		{ErrCodeInternal, KindInternal},
		{"", KindInternal},
		{"SOMETHING_ELSE", KindInternal},
	}
	for _, tt := range tests {
		if got := tt.code.Kind(); got != tt.want {
			t.Errorf("%q.Kind() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeSymbolNotFound, "no symbol named %q", "gear"), `no symbol named "gear"`},
		{fmt.Errorf("render: %w", New(ErrCodeInvalidInput, "scale too large")), "scale too large"},
		{errors.New("plain error"), "plain error"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
