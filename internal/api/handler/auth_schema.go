package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Messages are fixed safe strings; internal error text never
// appears here.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public view of a user. It never includes the password
// hash; the id is present on registration and omitted on login.
type userResponse struct {
	ID    int64  `json:"id,omitempty"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
