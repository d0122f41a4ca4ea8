package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publication statuses shared by blog and portfolio documents.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
	StatusScheduled = "scheduled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusScheduled:
		return true
	}

	return false
}

type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	AuthorID      string             `bson:"author" json:"author"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	Content       string             `bson:"content" json:"content"`
	Tags          []string           `bson:"tags" json:"tags"`
	Categories    []string           `bson:"categories" json:"categories"`
	FeaturedImage *ImageRef          `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Status        string             `bson:"status" json:"status"`
	PublishedAt   *time.Time         `bson:"publishedAt" json:"publishedAt"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
