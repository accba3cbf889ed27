package models

// User is looked up by email during login. The whole record (every field
// below) is both signed into the session token and returned verbatim in the
// login response; no credential of any kind is stored or checked.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
