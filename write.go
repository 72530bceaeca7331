package brandkit

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// WriteFile encodes img as a PNG tagged with dpi and stores it at path,
// replacing any existing file. The data is written to a temporary file in
// the same directory, checked, and renamed into place, so a failed write
// never replaces the previous logo. The parent directory must exist.
func WriteFile(path string, img image.Image, dpi float64) error {
	return writeAtomic(path, func(w io.Writer) error {
		return EncodePNG(w, img, dpi)
	})
}

func writeAtomic(path string, encode func(io.Writer) error) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".brandkit-*.png")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = verifyPNG(tmp); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// verifyPNG sniffs the file's content type.
func verifyPNG(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if !mtype.Is("image/png") {
		return fmt.Errorf("%w: %s is %s", ErrNotPNG, path, mtype.String())
	}
	return nil
}
