package utils

import "strings"

// mimeTypeToExtension maps the image MIME types the upload intake accepts
// to their typical file extensions.
var mimeTypeToExtension = map[string]string{
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// Unknown types return an empty string.
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/png; charset=binary")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	return mimeTypeToExtension[cleanedMimeType]
}
