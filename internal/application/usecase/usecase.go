package usecase

import (
	"fmt"
	"os"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
	storageRepository "atelier/internal/domain/repository/storage"
	"atelier/pkg/logger"
)

// Storage categories of the stored-location layout.
const (
	CategoryBlog      = "blog"
	CategoryPortfolio = "portfolio"
	CategoryMedia     = "media"
)

// Default variant width tables per call site. The historical deployments
// used different tables for cover images and library/gallery images; each
// table is injected at wiring time and overridable from config.
func DefaultCoverWidths() map[string]int {
	return map[string]int{
		model.VariantThumbnail: 150,
		model.VariantSmall:     300,
		model.VariantMedium:    600,
		model.VariantLarge:     1200,
	}
}

func DefaultMediaWidths() map[string]int {
	return map[string]int{
		model.VariantThumbnail: 64,
		model.VariantSmall:     256,
		model.VariantMedium:    512,
		model.VariantLarge:     1024,
	}
}

// cleanupWarnings turns failed deletions into response warnings. Skipped
// (already gone) files are not warnings.
func cleanupWarnings(results []storageRepository.RemoveResult) []string {
	var warnings []string
	for _, loc := range storageRepository.FailedLocations(results) {
		warnings = append(warnings, fmt.Sprintf("couldn't delete %s", loc))
	}

	return warnings
}

// discardUpload removes a spooled upload artifact the pipeline didn't
// consume.
func discardUpload(upload *dto.Upload) {
	if upload == nil {
		return
	}
	if err := os.Remove(upload.Path); err != nil && !os.IsNotExist(err) {
		logger.Warn("couldn't discard upload artifact", "path", upload.Path, "err", err)
	}
}
