package domain

// User is a locally registered account. Email is the identity key,
// compared case-sensitively.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Session marks whether a user is currently logged in for a profile.
type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	Name     string `json:"name,omitempty"`
}
