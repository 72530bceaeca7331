package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/shiftcrew/brandkit"
)

// Environment variables read by Load. A .env file in the working directory
// is loaded first; variables already set in the process win.
const (
	EnvOutputDir = "BRANDKIT_OUTPUT_DIR"
	EnvFontDirs  = "BRANDKIT_FONT_DIRS"
	EnvDPI       = "BRANDKIT_DPI"
	EnvLogLevel  = "BRANDKIT_LOG_LEVEL"
)

const dotEnvFile = ".env"

// ErrUnknownFormat is returned for brand kit files that are neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("config: unknown brand kit format (want .toml, .yaml or .yml)")

// Text configures one line of the logo.
type Text struct {
	Text          string  `toml:"text" yaml:"text"`
	Size          float64 `toml:"size" yaml:"size"`
	Family        string  `toml:"family" yaml:"family"`
	Weight        string  `toml:"weight" yaml:"weight"`
	X             float64 `toml:"x" yaml:"x"`
	Y             float64 `toml:"y" yaml:"y"`
	LetterSpacing bool    `toml:"letter_spacing" yaml:"letter_spacing"`
	FontFile      string  `toml:"font_file" yaml:"font_file"`
}

// Variant is one output file: a color pair and a file name.
type Variant struct {
	Name       string `toml:"name" yaml:"name"`
	Background string `toml:"background" yaml:"background"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	File       string `toml:"file" yaml:"file"`
}

// Config is the brand kit: figure geometry, the two text lines and the
// variants to write.
type Config struct {
	Width     float64   `toml:"width" yaml:"width"`
	Height    float64   `toml:"height" yaml:"height"`
	DPI       float64   `toml:"dpi" yaml:"dpi"`
	Pad       float64   `toml:"pad" yaml:"pad"`
	OutputDir string    `toml:"output_dir" yaml:"output_dir"`
	FontDirs  []string  `toml:"font_dirs" yaml:"font_dirs"`
	LogLevel  string    `toml:"log_level" yaml:"log_level"`
	Title     Text      `toml:"title" yaml:"title"`
	Tagline   Text      `toml:"tagline" yaml:"tagline"`
	Variants  []Variant `toml:"variants" yaml:"variants"`
}

// BrandGreen is the ShiftCrew site color.
const BrandGreen = "#22c55e"

// Default returns the ShiftCrew brand kit: the primary logo on white and
// the dark logo on #111827, both in brand green, written to the working
// directory.
func Default() Config {
	return Config{
		Width:     brandkit.DefaultWidth,
		Height:    brandkit.DefaultHeight,
		DPI:       brandkit.DefaultDPI,
		Pad:       brandkit.DefaultPad,
		OutputDir: ".",
		LogLevel:  "warn",
		Title: Text{
			Text:   brandkit.Wordmark,
			Size:   60,
			Family: string(brandkit.Serif),
			Weight: "bold",
			X:      0.5,
			Y:      0.6,
		},
		Tagline: Text{
			Text:          brandkit.Tagline,
			Size:          12,
			Family:        string(brandkit.SansSerif),
			Weight:        "regular",
			X:             0.5,
			Y:             0.4,
			LetterSpacing: true,
		},
		Variants: defaultVariants(),
	}
}

func defaultVariants() []Variant {
	return []Variant{
		{Name: "primary", Background: "white", Foreground: BrandGreen, File: "ShiftCrew_Primary.png"},
		{Name: "dark", Background: "#111827", Foreground: BrandGreen, File: "ShiftCrew_Dark.png"},
	}
}

// Load builds the configuration from the defaults, the brand kit file at
// path (skipped when path is empty) and the environment, in that order.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read brand kit: %w", err)
	}

	// Lists replace the defaults instead of merging with them.
	c.Variants = nil
	c.FontDirs = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return fmt.Errorf("parse brand kit %s: %w", path, err)
	}

	if len(c.Variants) == 0 {
		c.Variants = defaultVariants()
	}
	return nil
}

func (c *Config) applyEnv() error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontDirs)); v != "" {
		c.FontDirs = filepath.SplitList(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDPI)); v != "" {
		dpi, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDPI, err)
		}
		c.DPI = dpi
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the configuration before anything is rendered.
func (c Config) Validate() error {
	if _, err := c.Layout(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if len(c.Variants) == 0 {
		return errors.New("config: no variants")
	}

	seen := make(map[string]string, len(c.Variants))
	for i, v := range c.Variants {
		name := v.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		if strings.TrimSpace(v.File) == "" {
			return fmt.Errorf("config: variant %s: empty file", name)
		}
		if _, err := brandkit.ParseColor(v.Background); err != nil {
			return fmt.Errorf("config: variant %s: background: %w", name, err)
		}
		if _, err := brandkit.ParseColor(v.Foreground); err != nil {
			return fmt.Errorf("config: variant %s: foreground: %w", name, err)
		}
		out := filepath.Clean(c.outputPath(v.File))
		if prev, dup := seen[out]; dup {
			return fmt.Errorf("config: variants %s and %s both write %s", prev, name, out)
		}
		seen[out] = name
	}
	return nil
}

// Layout converts the figure and text settings into a brandkit.Layout.
func (c Config) Layout() (brandkit.Layout, error) {
	title, err := c.Title.element()
	if err != nil {
		return brandkit.Layout{}, fmt.Errorf("title: %w", err)
	}
	tagline, err := c.Tagline.element()
	if err != nil {
		return brandkit.Layout{}, fmt.Errorf("tagline: %w", err)
	}

	l := brandkit.Layout{
		Width:    c.Width,
		Height:   c.Height,
		DPI:      c.DPI,
		Pad:      c.Pad,
		Elements: []brandkit.Element{title, tagline},
	}
	if err := l.Validate(); err != nil {
		return brandkit.Layout{}, err
	}
	return l, nil
}

func (t Text) element() (brandkit.Element, error) {
	family, err := brandkit.ParseFamily(t.Family)
	if err != nil {
		return brandkit.Element{}, err
	}
	weight, err := brandkit.ParseWeight(t.Weight)
	if err != nil {
		return brandkit.Element{}, err
	}

	text := t.Text
	if t.LetterSpacing {
		text = brandkit.LetterSpace(text)
	}
	return brandkit.Element{
		Text:     text,
		Size:     t.Size,
		Family:   family,
		Weight:   weight,
		X:        t.X,
		Y:        t.Y,
		FontFile: expandHome(t.FontFile),
	}, nil
}

// Requests returns one render request per variant, with file names
// resolved against OutputDir.
func (c Config) Requests() []brandkit.Request {
	reqs := make([]brandkit.Request, 0, len(c.Variants))
	for _, v := range c.Variants {
		reqs = append(reqs, brandkit.Request{
			Background: v.Background,
			Foreground: v.Foreground,
			Path:       c.outputPath(v.File),
		})
	}
	return reqs
}

// SearchDirs returns the font directories with ~ expanded, or nil when
// none are configured so the system defaults apply.
func (c Config) SearchDirs() []string {
	if len(c.FontDirs) == 0 {
		return nil
	}
	dirs := make([]string, 0, len(c.FontDirs))
	for _, d := range c.FontDirs {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, expandHome(d))
		}
	}
	return dirs
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

func (c Config) outputPath(file string) string {
	file = expandHome(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(expandHome(c.OutputDir), file)
}

// expandHome replaces a leading ~ with the user's home directory. Other
// paths, including relative ones, are returned unchanged.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
