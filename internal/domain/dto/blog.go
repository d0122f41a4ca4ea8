package dto

import "time"

type CreateBlogInput struct {
	Title      string
	Excerpt    string
	Content    string
	Tags       []string
	Categories []string
	Status     string
}

// UpdateBlogInput carries only the fields present on the request; nil
// pointers leave the stored value untouched.
type UpdateBlogInput struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	Tags        []string
	Categories  []string
	Status      *string
	PublishedAt *time.Time
}

type ListBlogsQuery struct {
	Page   int
	Limit  int
	Status string // admin only; empty means published
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}
