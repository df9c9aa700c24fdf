package handler

// roleRequest is used for both role creation and rename; the id always comes
// from the URL or the stored record, never from the body.
type roleRequest struct {
	Name string `json:"name" validate:"required,alphanum,min=4,max=10"`
}

// assignRoleRequest attaches an existing role to a user.
type assignRoleRequest struct {
	ID int `json:"id" validate:"required"`
}

type roleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
