package presentation

const (
	SlugParam = "slug"
	IDParam   = "id"

	// PrincipalKey is the echo context key the auth middleware stores the
	// authenticated caller under.
	PrincipalKey = "principal"

	AuthHeader   = "Authorization"
	BearerPrefix = "Bearer "
)
