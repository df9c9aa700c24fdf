package domain

// Role is a permission label attached to users through a many-to-many join.
// Its lifetime is independent of any user holding it.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
