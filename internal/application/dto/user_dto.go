package dto

// CreateUserRequest entrada para crear un usuario (pass en texto, se hashea en use case).
type CreateUserRequest struct {
	Name  string `json:"name"`
	Login string `json:"login"`
	Pass  string `json:"pass"`
	Role  string `json:"role"` // ADMIN | USER; vacío = USER
}

// UserResponse salida de un usuario (sin credencial).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Login string `json:"login"`
	Pass  string `json:"pass"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
