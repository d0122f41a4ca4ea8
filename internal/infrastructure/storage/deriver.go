package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"atelier/internal/domain/model"
	"atelier/pkg/logger"
	"atelier/pkg/utils"
)

var (
	ErrSourceNotFound    = errors.New("source image not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// VariantFailure is one failed resize inside a Derive call.
type VariantFailure struct {
	Variant string
	Err     error
}

func (f VariantFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Variant, f.Err)
}

func (f VariantFailure) Unwrap() error {
	return f.Err
}

// DeriveError reports which variants failed. By the time it is returned,
// every file the call had written has been removed again.
type DeriveError struct {
	Failures []VariantFailure
}

func (e *DeriveError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}

	return "variant generation failed: " + strings.Join(parts, "; ")
}

// FailedVariants lists the variant names that failed, sorted.
func (e *DeriveError) FailedVariants() []string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Variant
	}
	sort.Strings(names)

	return names
}

// Deriver generates the stored variant set for an uploaded image.
type Deriver struct {
	resolver *Resolver
}

func NewDeriver(resolver *Resolver) *Deriver {
	return &Deriver{resolver: resolver}
}

// Derive implements the variant pipeline: the source is copied untouched
// into the original location, then each configured variant is resized
// concurrently, capped at its max width and never upscaled. On any failure
// all written files are rolled back. On success the source artifact is
// consumed.
func (d *Deriver) Derive(ctx context.Context, srcPath, filename, category string,
	widths map[string]int,
) (model.AssetPathMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(srcPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, srcPath)
	}

	filename, err := d.encodableName(filename, srcPath)
	if err != nil {
		return nil, err
	}
	filename = UniqueName(filename)

	variants := make([]string, 0, len(widths)+1)
	variants = append(variants, model.VariantOriginal)
	for name := range widths {
		variants = append(variants, name)
	}
	if err := d.resolver.EnsureDirs(category, variants); err != nil {
		return nil, err
	}

	originalLoc := d.resolver.Location(category, model.VariantOriginal, filename)
	originalAbs, err := d.resolver.Abs(originalLoc)
	if err != nil {
		return nil, err
	}
	if err := copyFile(srcPath, originalAbs); err != nil {
		return nil, fmt.Errorf("store original: %w", err)
	}

	written := []string{originalAbs}

	src, err := imaging.Open(srcPath)
	if err != nil {
		removeFiles(written)

		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	srcWidth := src.Bounds().Dx()

	paths := model.AssetPathMap{model.VariantOriginal: originalLoc}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures []VariantFailure
	)

	for name, maxWidth := range widths {
		wg.Add(1)
		go func(name string, maxWidth int) {
			defer wg.Done()

			location := d.resolver.Location(category, name, filename)
			abs, err := d.resolver.Abs(location)
			if err == nil {
				width := maxWidth
				if srcWidth < width {
					width = srcWidth
				}
				resized := imaging.Resize(src, width, 0, imaging.Lanczos)
				err = imaging.Save(resized, abs)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, VariantFailure{Variant: name, Err: err})

				return
			}
			written = append(written, abs)
			paths[name] = location
		}(name, maxWidth)
	}
	wg.Wait()

	if len(failures) > 0 {
		removeFiles(written)

		return nil, &DeriveError{Failures: failures}
	}

	if err := os.Remove(srcPath); err != nil {
		logger.Warn("couldn't remove upload artifact", "path", srcPath, "err", err)
	}

	return paths, nil
}

// encodableName makes sure the filename carries an extension the encoder
// understands, sniffing the source bytes when it doesn't.
func (d *Deriver) encodableName(filename, srcPath string) (string, error) {
	if _, err := imaging.FormatFromFilename(filename); err == nil {
		return filename, nil
	}

	mime, err := mimetype.DetectFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("detect source type: %w", err)
	}

	ext := utils.GetExtensionFromMimeType(mime.String())
	if ext == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime.String())
	}

	return filename + ext, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return err
	}

	return out.Close()
}

func removeFiles(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Error("rollback: couldn't remove file", "path", p, "err", err)
		}
	}
}
