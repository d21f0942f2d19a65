package domain

// Identity is the minimal projection of a user returned after a successful
// login.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"name"`
}

// IdentityOf projects a directory record.
func IdentityOf(u *User) Identity {
	return Identity{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}
}
