package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename    string             `bson:"filename" json:"filename"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AltText     string             `bson:"altText" json:"altText"`
	Type        string             `bson:"type" json:"type"`
	MimeType    string             `bson:"mimeType" json:"mimeType"`
	Size        int64              `bson:"size" json:"size"`
	Tags        []string           `bson:"tags" json:"tags"`
	Versions    AssetPathMap       `bson:"versions" json:"versions"`
	UploadedBy  string             `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
