package handler

// messageResponse is the minimal error/status envelope used on all non-2xx
// responses. It is constructed per call and returned directly; no response
// state is shared between requests.
type messageResponse struct {
	Message string `json:"message"`
}

// registerRequest carries only the fields legal when creating a user.
// Username is optional and defaults to the email server-side.
type registerRequest struct {
	Email    string `json:"email"    validate:"required,email,max=64"`
	Username string `json:"username" validate:"omitempty,alphanum,min=6,max=32"`
	Password string `json:"password" validate:"required,alphanum,min=6,max=32"`
}

// updateUserRequest carries only the fields legal for an existing user.
// There is no email or id field: those are immutable after creation, and
// omitting them here makes that compile-time-checkable.
type updateUserRequest struct {
	Username string `json:"username" validate:"omitempty,alphanum,min=6,max=32"`
	Password string `json:"password" validate:"required,alphanum,min=6,max=32"`
}

// loginRequest accepts usernames up to the email bound because a username
// defaults to the email at registration and must stay loginable.
type loginRequest struct {
	Username string `json:"username" validate:"required,min=6,max=64"`
	Password string `json:"password" validate:"required,alphanum,min=6,max=32"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// userResponse is the outward user shape. It has no password field of any kind.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
