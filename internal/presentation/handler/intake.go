package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"atelier/internal/domain/dto"
)

// ErrUnsupportedType rejects uploads outside the image allow-list.
var ErrUnsupportedType = errors.New("Only JPEG, PNG, and GIF images are allowed")

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// Intake spools multipart uploads onto local storage and sniffs their type
// before the image pipeline runs.
type Intake struct {
	tempDir string
}

func NewIntake(tempDir string) (*Intake, error) {
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, err
	}

	return &Intake{tempDir: tempDir}, nil
}

// Receive spools the named file field. A missing field yields (nil, nil);
// upload is optional on most endpoints.
func (i *Intake) Receive(c echo.Context, field string) (*dto.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, err
	}

	return i.spool(header)
}

// ReceiveAll spools every file sent under the named field, in order.
func (i *Intake) ReceiveAll(c echo.Context, field string) ([]dto.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, err
	}

	var uploads []dto.Upload
	for _, header := range form.File[field] {
		upload, err := i.spool(header)
		if err != nil {
			for _, u := range uploads {
				os.Remove(u.Path)
			}

			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	return uploads, nil
}

func (i *Intake) spool(header *multipart.FileHeader) (*dto.Upload, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(i.tempDir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return nil, err
	}

	mime, err := mimetype.DetectFile(tmp.Name())
	if err != nil {
		os.Remove(tmp.Name())

		return nil, err
	}
	if _, ok := allowedImageTypes[mime.String()]; !ok {
		os.Remove(tmp.Name())

		return nil, ErrUnsupportedType
	}

	return &dto.Upload{
		Path:         tmp.Name(),
		OriginalName: header.Filename,
		MimeType:     mime.String(),
		Size:         header.Size,
	}, nil
}
