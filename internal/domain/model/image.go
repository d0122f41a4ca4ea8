package model

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Variant names of one logical image. Original is always present once an
// asset exists; the rest only if generation succeeded.
const (
	VariantOriginal  = "original"
	VariantThumbnail = "thumbnail"
	VariantSmall     = "small"
	VariantMedium    = "medium"
	VariantLarge     = "large"
)

// AssetPathMap maps a variant name to the stored-location it was written to.
type AssetPathMap map[string]string

// Locations returns every stored-location referenced by the map.
func (m AssetPathMap) Locations() []string {
	locations := make([]string, 0, len(m))
	for _, loc := range m {
		if loc != "" {
			locations = append(locations, loc)
		}
	}

	return locations
}

type ImageRefKind int

const (
	RefLegacyPath ImageRefKind = iota + 1
	RefVersioned
	RefMediaLibrary
)

// ImageRef is the image field attached to a document. Historical schema
// revisions persisted three shapes: a bare path string, a variant map, and a
// media-library reference {mediaId, versions}. Decoding pattern-matches on
// shape instead of relying on the stored form being uniform.
type ImageRef struct {
	Path     string
	MediaID  string
	Versions AssetPathMap
}

// NewVersionedAsset builds the reference attached to a document that owns
// the generated variant files.
func NewVersionedAsset(versions AssetPathMap) *ImageRef {
	return &ImageRef{Versions: versions}
}

// NewMediaLibraryRef builds a reference to a media-library item. The media
// document owns the files; documents holding the reference never do.
func NewMediaLibraryRef(mediaID string, versions AssetPathMap) *ImageRef {
	return &ImageRef{MediaID: mediaID, Versions: versions}
}

func (r *ImageRef) Kind() ImageRefKind {
	switch {
	case r.MediaID != "":
		return RefMediaLibrary
	case len(r.Versions) > 0:
		return RefVersioned
	default:
		return RefLegacyPath
	}
}

// OwnedLocations returns the stored-locations whose files belong to the
// holding document. Media-library references own nothing.
func (r *ImageRef) OwnedLocations() []string {
	if r == nil {
		return nil
	}

	switch r.Kind() {
	case RefMediaLibrary:
		return nil
	case RefVersioned:
		return r.Versions.Locations()
	default:
		if r.Path == "" {
			return nil
		}

		return []string{r.Path}
	}
}

// mediaRefShape is the persisted form of a media-library reference.
type mediaRefShape struct {
	MediaID  string       `bson:"mediaId" json:"mediaId"`
	Versions AssetPathMap `bson:"versions" json:"versions"`
}

func (r ImageRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch r.Kind() {
	case RefMediaLibrary:
		return bson.MarshalValue(mediaRefShape{MediaID: r.MediaID, Versions: r.Versions})
	case RefVersioned:
		return bson.MarshalValue(r.Versions)
	default:
		return bson.MarshalValue(r.Path)
	}
}

func (r *ImageRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*r = ImageRef{}
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeNull:
		return nil
	case bson.TypeString:
		r.Path = raw.StringValue()

		return nil
	case bson.TypeEmbeddedDocument:
		var shape mediaRefShape
		if err := raw.Unmarshal(&shape); err == nil && shape.MediaID != "" {
			r.MediaID = shape.MediaID
			r.Versions = shape.Versions

			return nil
		}

		var versions AssetPathMap
		if err := raw.Unmarshal(&versions); err != nil {
			return err
		}
		r.Versions = versions

		return nil
	default:
		return fmt.Errorf("unsupported image reference shape: %s", t)
	}
}

func (r ImageRef) MarshalJSON() ([]byte, error) {
	switch r.Kind() {
	case RefMediaLibrary:
		return json.Marshal(mediaRefShape{MediaID: r.MediaID, Versions: r.Versions})
	case RefVersioned:
		return json.Marshal(r.Versions)
	default:
		return json.Marshal(r.Path)
	}
}

func (r *ImageRef) UnmarshalJSON(data []byte) error {
	*r = ImageRef{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &r.Path)
	}

	var shape mediaRefShape
	if err := json.Unmarshal(data, &shape); err == nil && shape.MediaID != "" {
		r.MediaID = shape.MediaID
		r.Versions = shape.Versions

		return nil
	}

	var versions AssetPathMap
	if err := json.Unmarshal(data, &versions); err != nil {
		return err
	}
	r.Versions = versions

	return nil
}

// GalleryEntry is one captioned image of a portfolio gallery.
type GalleryEntry struct {
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Image       AssetPathMap `bson:"image" json:"image"`
}

// NewGalleryEntry pairs a generated variant map with its caller-supplied
// caption. No I/O happens here.
func NewGalleryEntry(title, description string, versions AssetPathMap) GalleryEntry {
	return GalleryEntry{Title: title, Description: description, Image: versions}
}
