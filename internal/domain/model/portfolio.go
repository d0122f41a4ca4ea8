package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Portfolio struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	AuthorID    string             `bson:"author" json:"author"`
	Description string             `bson:"description" json:"description"`
	ProjectType string             `bson:"projectType" json:"projectType"`
	Styles      []string           `bson:"styles" json:"styles"`
	Rooms       []string           `bson:"rooms" json:"rooms"`
	ClientName  string             `bson:"clientName" json:"clientName"`
	Location    string             `bson:"location" json:"location"`
	ProjectDate *time.Time         `bson:"projectDate" json:"projectDate"`
	Status      string             `bson:"status" json:"status"`
	CoverImage  *ImageRef          `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Gallery     []GalleryEntry     `bson:"gallery" json:"gallery"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OwnedLocations gathers every stored-location whose file belongs to this
// document: the cover (unless it points into the media library) and all
// gallery images.
func (p *Portfolio) OwnedLocations() []string {
	locations := p.CoverImage.OwnedLocations()
	for _, entry := range p.Gallery {
		locations = append(locations, entry.Image.Locations()...)
	}

	return locations
}
