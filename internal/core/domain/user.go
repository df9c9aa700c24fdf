package domain

// AuthorityAdmin is the authority required for destructive user operations.
const AuthorityAdmin = "admin"

// User models an identity record. ID and Email are assigned once at creation
// and never change; update operations may only touch Username and PasswordHash.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"roles,omitempty"`
}

// HasAuthority reports whether the user carries a role with the given name.
func (u *User) HasAuthority(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
