// Command shiftlogo writes the ShiftCrew logo PNGs.
//
// With no arguments it renders ShiftCrew_Primary.png and ShiftCrew_Dark.png
// into the working directory. A brand kit file (-config) changes the
// layout, colors and file names; see package internal/config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/shiftcrew/brandkit"
	"github.com/shiftcrew/brandkit/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shiftlogo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fontDirs []string
	configPath := fs.String("config", "", "brand kit file, .toml or .yaml (optional)")
	outDir := fs.String("out", "", "output directory (overrides the brand kit)")
	dpi := fs.Float64("dpi", 0, "resolution in dots per inch (overrides the brand kit)")
	verbose := fs.Bool("v", false, "log font lookups and written files")
	fs.Func("font-dir", "directory searched for fonts (repeatable, or a path list)", func(s string) error {
		fontDirs = append(fontDirs, filepath.SplitList(s)...)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "shiftlogo: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "shiftlogo: %v\n", err)
		return 1
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *dpi != 0 {
		cfg.DPI = *dpi
	}
	if fontDirs != nil {
		cfg.FontDirs = fontDirs
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "shiftlogo: %v\n", err)
		return 1
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	brandkit.SetLogger(logger)
	defer brandkit.SetLogger(nil)

	if err := generate(ctx, cfg); err != nil {
		fmt.Fprintf(stderr, "shiftlogo: %v\n", err)
		return 1
	}

	style := lipgloss.NewRenderer(stdout).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(config.BrandGreen))
	fmt.Fprintln(stdout, style.Render("Logos generated successfully!"))
	return 0
}

// generate renders every variant in order and stops at the first failure.
func generate(ctx context.Context, cfg config.Config) error {
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	opts := []brandkit.Option{brandkit.WithLayout(layout)}
	if dirs := cfg.SearchDirs(); dirs != nil {
		opts = append(opts, brandkit.WithFontDirs(dirs...))
	}
	r, err := brandkit.NewRenderer(opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, req := range cfg.Requests() {
		if err := r.RenderFile(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
