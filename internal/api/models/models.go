package models

// Role tags a session identity.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// Identity is the session identity attached to a request. It is a tagged
// variant (anonymous, user or admin) so access checks stay exhaustive
// instead of probing independent session keys.
type Identity struct {
	Role Role
	ID   uint
	Name string
}

// Anonymous is the identity of an unauthenticated request.
func Anonymous() Identity {
	return Identity{Role: RoleAnonymous}
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsUser() bool {
	return i.Role == RoleUser
}

// ToolView is the template-facing representation of a catalog entry.
type ToolView struct {
	ID             uint
	Name           string
	Description    string
	Benefits       string
	Limitations    string
	UsabilityScore int
	AccessLink     string
	CategoryName   string
	Added          string
}

// CategoryView is the template-facing representation of a category.
type CategoryView struct {
	ID   uint
	Name string
}
