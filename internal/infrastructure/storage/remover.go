package storage

import (
	"context"
	"os"

	storageRepository "atelier/internal/domain/repository/storage"
	"atelier/pkg/logger"
)

// Remover deletes the files behind superseded path maps from local disk.
type Remover struct {
	resolver *Resolver
}

func NewRemover(resolver *Resolver) *Remover {
	return &Remover{resolver: resolver}
}

// RemoveAll deletes every distinct stored-location and reports one result
// per location. Files already gone are logged and reported as skipped; a
// record may reference a path removed out-of-band.
func (r *Remover) RemoveAll(ctx context.Context, locations []string) []storageRepository.RemoveResult {
	seen := make(map[string]struct{}, len(locations))
	results := make([]storageRepository.RemoveResult, 0, len(locations))

	for _, location := range locations {
		if location == "" {
			continue
		}
		if _, dup := seen[location]; dup {
			continue
		}
		seen[location] = struct{}{}

		if err := ctx.Err(); err != nil {
			results = append(results, storageRepository.RemoveResult{Location: location, Err: err})

			continue
		}

		result := storageRepository.RemoveResult{Location: location}

		abs, err := r.resolver.Abs(location)
		if err != nil {
			result.Err = err
			logger.Error("cleanup: unresolvable stored-location", "location", location, "err", err)
			results = append(results, result)

			continue
		}

		switch err := os.Remove(abs); {
		case err == nil:
		case os.IsNotExist(err):
			result.Skipped = true
			logger.Warn("cleanup: file already gone", "location", location)
		default:
			result.Err = err
			logger.Error("cleanup: couldn't remove file", "location", location, "err", err)
		}

		results = append(results, result)
	}

	return results
}
