package user

// User represents an account and maps to the `users` table.
// Password holds the bcrypt hash and is stripped before any response.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
}
