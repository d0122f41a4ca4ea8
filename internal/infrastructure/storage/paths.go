package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the mount point of the static file layer. Stored-locations
// are persisted with this prefix and served under it verbatim.
const URLPrefix = "/uploads"

var ErrBadLocation = errors.New("stored-location escapes the storage base directory")

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Resolver computes stored-locations and their on-disk paths. All locations
// resolve under one configured base directory.
type Resolver struct {
	baseDir string
}

func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Location returns the canonical stored-location for a variant of a file:
// /uploads/{category}/{variant}/{filename}.
func (r *Resolver) Location(category, variant, filename string) string {
	return path.Join(URLPrefix, category, variant, filename)
}

// Abs resolves a stored-location back to an absolute path under the base
// directory. Locations that would escape it are rejected.
func (r *Resolver) Abs(location string) (string, error) {
	rel := strings.TrimPrefix(location, URLPrefix)
	rel = strings.TrimPrefix(rel, "/")

	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || clean == ".." || filepath.IsAbs(clean) ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrBadLocation, location)
	}

	return filepath.Join(r.baseDir, clean), nil
}

// EnsureDirs creates the physical container of every variant of a category.
// Creating an existing container is not an error.
func (r *Resolver) EnsureDirs(category string, variants []string) error {
	for _, variant := range variants {
		dir := filepath.Join(r.baseDir, category, variant)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return nil
}

// UniqueName prepends a monotonic-time-plus-random prefix to the original
// filename so concurrent uploads of identically-named files never collide.
// There is no locking around path allocation; this prefix is the sole
// mitigation.
func UniqueName(original string) string {
	base := filepath.Base(original)
	base = unsafeNameChars.ReplaceAllString(base, "-")

	return fmt.Sprintf("%d-%s-%s", time.Now().UnixNano(), uuid.NewString()[:8], base)
}
