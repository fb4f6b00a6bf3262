package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/symbol"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
	if !strings.HasSuffix(dir, "sigil") {
		t.Errorf("cacheDir() = %q, should end with 'sigil'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestSymbolDir(t *testing.T) {
	t.Setenv(envSymbolDir, "")
	if got := symbolDir(); got != defaultSymbolDir {
		t.Errorf("symbolDir() = %q, want %q", got, defaultSymbolDir)
	}
	t.Setenv(envSymbolDir, "/srv/symbols")
	if got := symbolDir(); got != "/srv/symbols" {
		t.Errorf("symbolDir() = %q, want /srv/symbols", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"browse", "cache", "completion", "list", "points", "render", "serve", "tree"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"#ff0000", "#ff0000"},
		{"none", "none"},
		{"", "none"},
	}
	for _, tt := range tests {
		got := swatch(tt.color)
		if !strings.Contains(got, tt.want) {
			t.Errorf("swatch(%q) = %q, want it to contain %q", tt.color, got, tt.want)
		}
		if tt.want == "none" && strings.Contains(got, iconSwatch) {
			t.Errorf("swatch(%q) should not draw a block", tt.color)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.New(apperr.ErrCodeInvalidColor, "bad"), 2},
		{apperr.New(apperr.ErrCodeSymbolNotFound, "missing"), 3},
		{&symbol.AttachmentPointError{Symbol: "arrow", Type: "tip", Index: 3}, 3},
		{errors.New("disk full"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
