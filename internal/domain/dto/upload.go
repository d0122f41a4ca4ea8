package dto

// Upload describes a file the intake layer has already received onto local
// readable storage, before the image pipeline runs.
type Upload struct {
	Path         string
	OriginalName string
	MimeType     string
	Size         int64
}
