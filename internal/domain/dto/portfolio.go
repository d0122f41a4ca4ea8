package dto

import "time"

type CreatePortfolioInput struct {
	Title       string
	Slug        string
	Description string
	ProjectType string
	Styles      []string
	Rooms       []string
	ClientName  string
	Location    string
	ProjectDate *time.Time
	Status      string

	// Captions for the uploaded gallery files, parallel to the file order.
	GalleryTitles       []string
	GalleryDescriptions []string
}

type UpdatePortfolioInput struct {
	Title       *string
	Slug        *string
	Description *string
	ProjectType *string
	Styles      []string
	Rooms       []string
	ClientName  *string
	Location    *string
	ProjectDate *time.Time
	Status      *string

	GalleryTitles       []string
	GalleryDescriptions []string
}

type ListPortfoliosQuery struct {
	Status string // admin only; empty means published
}
