package storage

import (
	"context"

	"atelier/internal/domain/model"
)

// Deriver turns one uploaded source image into its stored variant set.
type Deriver interface {
	// Derive copies the source into the category's original location, writes
	// one resized copy per configured variant (name -> max width in pixels)
	// and returns the complete path map. On any variant failure every file
	// already written is removed and an error is returned; a partial map is
	// never produced.
	Derive(ctx context.Context, srcPath, filename, category string, widths map[string]int) (model.AssetPathMap, error)
}
