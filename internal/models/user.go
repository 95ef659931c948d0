package models

// User is the authenticated account representation.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	Nickname  string `json:"nickname,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	PhotoPath string `json:"photo_path,omitempty"`
}

// Profile is the flat profile payload returned by the /users endpoints:
// the user's own fields with their recipes embedded alongside.
type Profile struct {
	User
	Recipes []Recipe `json:"recipes"`
}
