package storage

import "context"

// RemoveResult reports the outcome of deleting one stored-location.
type RemoveResult struct {
	Location string
	Skipped  bool // the file was already gone
	Err      error
}

// Remover deletes the files behind a superseded or deleted path map.
type Remover interface {
	// RemoveAll deletes every distinct stored-location, returning one result
	// per location. A missing file is reported as skipped, not as a failure.
	RemoveAll(ctx context.Context, locations []string) []RemoveResult
}

// FailedLocations filters results down to the locations whose deletion
// actually failed.
func FailedLocations(results []RemoveResult) []string {
	var failed []string
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res.Location)
		}
	}

	return failed
}
