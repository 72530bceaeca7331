package brandkit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontCandidates lists well-known font files per family and weight, most
// preferred first. Only TTF/OTF files are listed; gg cannot read TTC
// collections.
var fontCandidates = map[Family]map[Weight][]string{
	Serif: {
		Bold: {
			"PlayfairDisplay-Bold.ttf",
			"DejaVuSerif-Bold.ttf",
			"LiberationSerif-Bold.ttf",
			"NotoSerif-Bold.ttf",
			"FreeSerifBold.ttf",
			"Times New Roman Bold.ttf",
			"timesbd.ttf",
			"Georgia Bold.ttf",
			"georgiab.ttf",
		},
		Regular: {
			"PlayfairDisplay-Regular.ttf",
			"DejaVuSerif.ttf",
			"LiberationSerif-Regular.ttf",
			"NotoSerif-Regular.ttf",
			"FreeSerif.ttf",
			"Times New Roman.ttf",
			"times.ttf",
			"Georgia.ttf",
		},
	},
	SansSerif: {
		Bold: {
			"Lato-Bold.ttf",
			"DejaVuSans-Bold.ttf",
			"LiberationSans-Bold.ttf",
			"NotoSans-Bold.ttf",
			"FreeSansBold.ttf",
			"Arial Bold.ttf",
			"arialbd.ttf",
			"segoeuib.ttf",
		},
		Regular: {
			"Lato-Regular.ttf",
			"DejaVuSans.ttf",
			"LiberationSans-Regular.ttf",
			"NotoSans-Regular.ttf",
			"FreeSans.ttf",
			"Arial.ttf",
			"segoeui.ttf",
			"calibri.ttf",
		},
	},
	Monospace: {
		Bold: {
			"DejaVuSansMono-Bold.ttf",
			"LiberationMono-Bold.ttf",
			"Courier New Bold.ttf",
			"courbd.ttf",
			"consolab.ttf",
		},
		Regular: {
			"DejaVuSansMono.ttf",
			"LiberationMono-Regular.ttf",
			"NotoSansMono-Regular.ttf",
			"Courier New.ttf",
			"cour.ttf",
			"consola.ttf",
		},
	},
}

// DefaultFontDirs returns the usual system and per-user font directories
// for the current OS. Directories that do not exist are harmless.
func DefaultFontDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string

	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		dirs = append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
	}
	return dirs
}

type fontKey struct {
	family Family
	weight Weight
	file   string
}

// FontResolver finds and loads fonts for layout elements.
//
// Lookup order: an element's explicit FontFile, then well-known file names
// in the search directories, then an embedded Go font. Loaded sources are
// cached until Close. FontResolver is safe for concurrent use.
type FontResolver struct {
	dirs []string

	mu      sync.Mutex
	index   map[string]string // lower-case base name -> path
	sources map[fontKey]*text.FontSource
}

// NewFontResolver returns a resolver that searches dirs. A nil slice
// means DefaultFontDirs; an empty, non-nil slice disables the search so
// only explicit files and embedded fonts are used.
func NewFontResolver(dirs []string) *FontResolver {
	if dirs == nil {
		dirs = DefaultFontDirs()
	}
	return &FontResolver{
		dirs:    append([]string(nil), dirs...),
		sources: make(map[fontKey]*text.FontSource),
	}
}

// Face returns a face for e at the given pixel size.
func (r *FontResolver) Face(e Element, px float64) (text.Face, error) {
	src, err := r.Source(e.Family, e.Weight, e.FontFile)
	if err != nil {
		return nil, err
	}
	return src.Face(px), nil
}

// Source returns the font source for a family and weight, or for file if
// it is not empty. A missing or unreadable explicit file is an error; a
// family with nothing installed falls back to an embedded font.
func (r *FontResolver) Source(family Family, weight Weight, file string) (*text.FontSource, error) {
	key := fontKey{family: family, weight: weight, file: file}

	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[key]; ok {
		return src, nil
	}

	var (
		src *text.FontSource
		err error
	)
	switch {
	case file != "":
		src, err = text.NewFontSourceFromFile(file)
		if err != nil {
			return nil, &FontError{Path: file, Err: err}
		}
		Logger().Debug("font loaded", "file", file, "name", src.Name())
	default:
		src = r.searchLocked(family, weight)
		if src == nil {
			src, err = embeddedSource(family, weight)
			if err != nil {
				return nil, err
			}
			Logger().Warn("no installed font found, using embedded Go font",
				"family", string(family), "weight", weight.String(), "name", src.Name())
		}
	}

	r.sources[key] = src
	return src, nil
}

// Close releases every cached font source.
func (r *FontResolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for key, src := range r.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(r.sources, key)
	}
	return errors.Join(errs...)
}

func (r *FontResolver) searchLocked(family Family, weight Weight) *text.FontSource {
	if r.index == nil {
		r.index = indexFontDirs(r.dirs)
	}
	for _, name := range fontCandidates[family][weight] {
		path, ok := r.index[strings.ToLower(name)]
		if !ok {
			continue
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			Logger().Debug("skipping unreadable font", "path", path, "err", err)
			continue
		}
		Logger().Debug("font resolved", "family", string(family), "weight", weight.String(), "path", path)
		return src
	}
	return nil
}

// indexFontDirs maps lower-case file names to paths. Earlier directories
// win when a name appears more than once.
func indexFontDirs(dirs []string) map[string]string {
	index := make(map[string]string)
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != dir {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf":
			default:
				return nil
			}
			name := strings.ToLower(d.Name())
			if _, seen := index[name]; !seen {
				index[name] = path
			}
			return nil
		})
	}
	return index
}

// embeddedSource returns the Go font closest to the request. The Go fonts
// have no serif face, so serif requests get the sans face of the same
// weight.
func embeddedSource(family Family, weight Weight) (*text.FontSource, error) {
	var data []byte
	switch {
	case family == Monospace && weight == Bold:
		data = gomonobold.TTF
	case family == Monospace:
		data = gomono.TTF
	case weight == Bold:
		data = gobold.TTF
	default:
		data = goregular.TTF
	}
	return text.NewFontSource(data)
}
