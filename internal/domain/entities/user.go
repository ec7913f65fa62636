package entities

// User is the authenticated principal resolved from the session token. The
// API only ever depends on this shape, never on which scheme produced it.

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
