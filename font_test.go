package brandkit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fontName returns the family name gg reports for embedded font data.
func fontName(t *testing.T, data []byte) string {
	t.Helper()
	src, err := text.NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	defer func() { _ = src.Close() }()
	return src.Name()
}

func TestFontResolverEmbeddedFallback(t *testing.T) {
	r := NewFontResolver([]string{})
	t.Cleanup(func() { _ = r.Close() })

	goName, monoName := fontName(t, goregular.TTF), fontName(t, gomono.TTF)
	tests := []struct {
		family Family
		weight Weight
		want   string
	}{
		{Serif, Bold, fontName(t, gobold.TTF)},
		{SansSerif, Regular, goName},
		{Monospace, Regular, monoName},
	}
	for _, tt := range tests {
		t.Run(string(tt.family)+"/"+tt.weight.String(), func(t *testing.T) {
			src, err := r.Source(tt.family, tt.weight, "")
			if err != nil {
				t.Fatalf("Source() error = %v", err)
			}
			if got := src.Name(); got != tt.want {
				t.Errorf("Source().Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFontResolverCachesSources(t *testing.T) {
	r := NewFontResolver([]string{})
	t.Cleanup(func() { _ = r.Close() })

	a, err := r.Source(Serif, Bold, "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Source(Serif, Bold, "")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Source() should return the cached source for the same key")
	}
}

func TestFontResolverSearchesDirs(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "truetype", "dejavu")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	// Any parseable font will do; Go Mono makes the hit easy to recognize.
	if err := os.WriteFile(filepath.Join(nested, "DejaVuSerif-Bold.ttf"), gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewFontResolver([]string{dir})
	t.Cleanup(func() { _ = r.Close() })

	src, err := r.Source(Serif, Bold, "")
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	if got, want := src.Name(), fontName(t, gomono.TTF); got != want {
		t.Errorf("Source().Name() = %q, want the installed font %q", got, want)
	}
}

// TestFontResolverPrefersBrandFonts tests that the brand pairing, Playfair
// Display over Lato, wins over other installed fonts.
func TestFontResolverPrefersBrandFonts(t *testing.T) {
	// Go Mono stands in for the brand fonts, Go Regular for the rest.
	dir := t.TempDir()
	files := map[string][]byte{
		"DejaVuSerif-Bold.ttf":     goregular.TTF,
		"PlayfairDisplay-Bold.ttf": gomono.TTF,
		"DejaVuSans.ttf":           goregular.TTF,
		"Lato-Regular.ttf":         gomono.TTF,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r := NewFontResolver([]string{dir})
	t.Cleanup(func() { _ = r.Close() })

	tests := []struct {
		family Family
		weight Weight
		want   []byte
	}{
		{Serif, Bold, gomono.TTF},
		{SansSerif, Regular, gomono.TTF},
	}
	for _, tt := range tests {
		src, err := r.Source(tt.family, tt.weight, "")
		if err != nil {
			t.Fatalf("Source(%s) error = %v", tt.family, err)
		}
		if got, want := src.Name(), fontName(t, tt.want); got != want {
			t.Errorf("Source(%s).Name() = %q, want %q", tt.family, got, want)
		}
	}
}

func TestFontResolverSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "DejaVuSerif-Bold.ttf"), []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewFontResolver([]string{dir})
	t.Cleanup(func() { _ = r.Close() })

	src, err := r.Source(Serif, Bold, "")
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	if got, want := src.Name(), fontName(t, gobold.TTF); got != want {
		t.Errorf("Source().Name() = %q, want embedded fallback %q", got, want)
	}
}

func TestFontResolverExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewFontResolver([]string{})
	t.Cleanup(func() { _ = r.Close() })

	face, err := r.Face(Element{Family: Serif, Weight: Bold, FontFile: path}, 40)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if face.Size() != 40 {
		t.Errorf("Face().Size() = %v, want 40", face.Size())
	}
	if got, want := face.Source().Name(), fontName(t, gomono.TTF); got != want {
		t.Errorf("face source = %q, want %q", got, want)
	}

	_, err = r.Source(Serif, Bold, filepath.Join(dir, "missing.ttf"))
	var fe *FontError
	if !errors.As(err, &fe) {
		t.Fatalf("Source(missing) error = %v, want *FontError", err)
	}
}

func TestIndexFontDirs(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	for _, dir := range []string{first, second} {
		if err := os.WriteFile(filepath.Join(dir, "Arial.TTF"), []byte{1}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(second, "readme.txt"), []byte{1}, 0o644); err != nil {
		t.Fatal(err)
	}

	index := indexFontDirs([]string{first, filepath.Join(first, "missing"), second})
	if got := index["arial.ttf"]; got != filepath.Join(first, "Arial.TTF") {
		t.Errorf("index[arial.ttf] = %q, want the first directory's copy", got)
	}
	if _, ok := index["readme.txt"]; ok {
		t.Error("non-font files should not be indexed")
	}
}

func TestDefaultFontDirs(t *testing.T) {
	if len(DefaultFontDirs()) == 0 {
		t.Error("DefaultFontDirs() returned no directories")
	}
}
