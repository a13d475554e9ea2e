package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. The password is stored as given and the
// session token is an opaque random string; neither appears in JSON output.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Token    string `json:"-"`
}
