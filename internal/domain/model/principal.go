package model

// RoleAdmin is the only elevated role the server checks for.
const RoleAdmin = "admin"

// Principal is the authenticated caller, supplied by the auth middleware.
type Principal struct {
	ID   string `yaml:"id" json:"id"`
	Role string `yaml:"role" json:"role"`
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
