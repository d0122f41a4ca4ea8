package dto

type CreateMediaInput struct {
	Title       string
	Description string
	AltText     string
	Tags        []string
}

type UpdateMediaInput struct {
	Title       *string
	Description *string
	AltText     *string
	Tags        []string
}

type ListMediaQuery struct {
	Tag    string
	Type   string
	Search string // case-insensitive match on filename
}
