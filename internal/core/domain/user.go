package domain

// RoleRef is the `{id, nombre}` object form the backend uses for roles in
// user-management responses.
type RoleRef struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// AccountUser is a managed account as returned by the users endpoints.
type AccountUser struct {
	ID        int      `json:"id"`
	Nombre    string   `json:"nombre"`
	Correo    string   `json:"correo"`
	Telefono  string   `json:"telefono,omitempty"`
	Direccion string   `json:"direccion,omitempty"`
	Rol       *RoleRef `json:"rol,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates an adopter account.
type RegisterRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Correo    string `json:"correo" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// UserInput creates or updates a managed account (privileged).
type UserInput struct {
	Nombre    string `json:"nombre" validate:"required"`
	Correo    string `json:"correo" validate:"required,email"`
	Password  string `json:"password,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	RolID     int    `json:"rolId,omitempty"`
}
