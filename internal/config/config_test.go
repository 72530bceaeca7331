package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shiftcrew/brandkit"
)

// isolate runs the test in an empty directory with no BRANDKIT_ variables
// set, so neither a stray .env nor the caller's environment leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{EnvOutputDir, EnvFontDirs, EnvDPI, EnvLogLevel} {
		t.Setenv(key, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_DefaultsMatchShiftCrewLogos(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	reqs := cfg.Requests()
	want := []brandkit.Request{
		{Background: "white", Foreground: "#22c55e", Path: "ShiftCrew_Primary.png"},
		{Background: "#111827", Foreground: "#22c55e", Path: "ShiftCrew_Dark.png"},
	}
	if len(reqs) != len(want) {
		t.Fatalf("Requests() = %d requests, want %d", len(reqs), len(want))
	}
	for i := range want {
		if reqs[i] != want[i] {
			t.Errorf("Requests()[%d] = %+v, want %+v", i, reqs[i], want[i])
		}
	}

	l, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	def := brandkit.DefaultLayout()
	if l.Width != def.Width || l.Height != def.Height || l.DPI != def.DPI || l.Pad != def.Pad {
		t.Errorf("Layout() geometry = %+v, want %+v", l, def)
	}
	for i := range def.Elements {
		if l.Elements[i] != def.Elements[i] {
			t.Errorf("Layout().Elements[%d] = %+v, want %+v", i, l.Elements[i], def.Elements[i])
		}
	}
	if cfg.SearchDirs() != nil {
		t.Errorf("SearchDirs() = %v, want nil (system defaults)", cfg.SearchDirs())
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelWarn {
		t.Errorf("Level() = %v, want warn", lvl)
	}
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "brand.toml", `
dpi = 150
output_dir = "dist"

[title]
text = "Crew"

[[variants]]
name = "mono"
background = "black"
foreground = "white"
file = "Crew_Mono.png"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DPI != 150 {
		t.Errorf("DPI = %v, want 150", cfg.DPI)
	}
	if cfg.Title.Text != "Crew" || cfg.Title.Size != 60 || cfg.Title.Weight != "bold" {
		t.Errorf("Title = %+v, want text overridden and the rest defaulted", cfg.Title)
	}
	if cfg.Tagline.Text != brandkit.Tagline || !cfg.Tagline.LetterSpacing {
		t.Errorf("Tagline = %+v, want defaults", cfg.Tagline)
	}
	reqs := cfg.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Requests() = %d, want the file's single variant", len(reqs))
	}
	if want := filepath.Join("dist", "Crew_Mono.png"); reqs[0].Path != want {
		t.Errorf("Path = %q, want %q", reqs[0].Path, want)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	t.Setenv("HOME", dir)
	path := writeFile(t, dir, "brand.yaml", `
pad: 0.5
font_dirs: [/opt/fonts, ~/fonts]
tagline:
  letter_spacing: false
variants:
  - name: light
    background: "#f9fafb"
    foreground: "#22c55e"
    file: light.png
  - name: dark
    background: "#111827"
    foreground: "#22c55e"
    file: dark.png
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Pad != 0.5 {
		t.Errorf("Pad = %v, want 0.5", cfg.Pad)
	}
	if len(cfg.Variants) != 2 || cfg.Variants[0].Name != "light" {
		t.Errorf("Variants = %+v", cfg.Variants)
	}

	l, err := cfg.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if l.Elements[1].Text != brandkit.Tagline {
		t.Errorf("tagline text = %q, want it unspaced", l.Elements[1].Text)
	}

	dirs := cfg.SearchDirs()
	if len(dirs) != 2 || dirs[0] != "/opt/fonts" || strings.HasPrefix(dirs[1], "~") {
		t.Errorf("SearchDirs() = %v, want ~ expanded", dirs)
	}
}

func TestLoad_EmptyYAMLKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "brand.yml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Variants) != 2 {
		t.Errorf("Variants = %d, want the 2 defaults", len(cfg.Variants))
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "brand.toml", "dpi = 150\noutput_dir = \"from-file\"\n")
	writeFile(t, dir, ".env", "BRANDKIT_OUTPUT_DIR=from-dotenv\nBRANDKIT_LOG_LEVEL=debug\n")
	t.Setenv(EnvDPI, "72")
	t.Setenv(EnvFontDirs, strings.Join([]string{"/a", "/b"}, string(os.PathListSeparator)))

	// godotenv keeps variables that are already set, even to "". t.Setenv
	// restores both after the test.
	os.Unsetenv(EnvOutputDir)
	os.Unsetenv(EnvLogLevel)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DPI != 72 {
		t.Errorf("DPI = %v, want env 72", cfg.DPI)
	}
	if cfg.OutputDir != "from-dotenv" {
		t.Errorf("OutputDir = %q, want .env value", cfg.OutputDir)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", lvl)
	}
	if got := cfg.SearchDirs(); len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Errorf("SearchDirs() = %v, want [/a /b]", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, file, body string
		env              map[string]string
		want             error
	}{
		{name: "unknown extension", file: "brand.json", body: "{}", want: ErrUnknownFormat},
		{name: "malformed toml", file: "brand.toml", body: "dpi = ="},
		{name: "unknown toml key", file: "brand.toml", body: "colour = \"red\""},
		{name: "unknown yaml key", file: "brand.yaml", body: "colour: red"},
		{name: "singular toml variant", file: "brand.toml", body: "[[variant]]\nbackground = \"white\"\nforeground = \"black\"\nfile = \"a.png\""},
		{name: "zero dpi", file: "brand.toml", body: "dpi = 0", want: brandkit.ErrInvalidLayout},
		{name: "bad family", file: "brand.toml", body: "[title]\nfamily = \"cursive\"", want: brandkit.ErrInvalidLayout},
		{name: "bad weight", file: "brand.toml", body: "[tagline]\nweight = \"heavy\"", want: brandkit.ErrInvalidLayout},
		{name: "bad color", file: "brand.toml", body: "[[variants]]\nbackground = \"nope\"\nforeground = \"white\"\nfile = \"a.png\""},
		{name: "empty file name", file: "brand.toml", body: "[[variants]]\nbackground = \"white\"\nforeground = \"black\""},
		{name: "duplicate output", file: "brand.toml", body: "[[variants]]\nbackground = \"white\"\nforeground = \"black\"\nfile = \"a.png\"\n[[variants]]\nbackground = \"black\"\nforeground = \"white\"\nfile = \"./a.png\""},
		{name: "bad log level", file: "brand.toml", body: "log_level = \"loud\""},
		{name: "bad env dpi", file: "brand.toml", body: "", env: map[string]string{EnvDPI: "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, dir, tt.file, tt.body)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want os.ErrNotExist", err)
	}
}

func TestOutputPathAbsolute(t *testing.T) {
	cfg := Default()
	abs := filepath.Join(t.TempDir(), "logo.png")
	if got := cfg.outputPath(abs); got != abs {
		t.Errorf("outputPath(%q) = %q, want it unchanged", abs, got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := map[string]string{
		"~":          home,
		"~/fonts":    filepath.Join(home, "fonts"),
		"fonts":      "fonts",
		"/abs/fonts": "/abs/fonts",
		"~user/x":    "~user/x",
	}
	for in, want := range tests {
		if got := expandHome(in); got != want {
			t.Errorf("expandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
