package dto

// LoginRequest entrada de POST /api/usuarios/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioPublico campos públicos de la cuenta que viajan junto al token.
type UsuarioPublico struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// LoginResponse salida de login y de cambio de contraseña.
// RequiereReseteo avisa al front que debe forzar un cambio de contraseña.
type LoginResponse struct {
	Token           string         `json:"token"`
	User            UsuarioPublico `json:"user"`
	RequiereReseteo bool           `json:"requiereReseteo"`
}

// CambiarPasswordRequest entrada de POST /api/usuarios/cambiar-password.
// Reautentica con la contraseña vieja antes de aceptar la nueva.
type CambiarPasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// VerifyTokenResponse salida de GET /api/verify-token: el claim decodificado,
// sin consulta a la base de datos.
type VerifyTokenResponse struct {
	User UsuarioPublico `json:"user"`
}

// CreateUsuarioRequest entrada para crear una cuenta (solo admin).
// La contraseña llega en claro y se hashea en el caso de uso.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RUT      string `json:"rut"`
	Telefono string `json:"telefono"`
	Rol      string `json:"rol"`
}

// UpdateUsuarioRequest entrada para actualizar perfil (admin o el propio usuario).
type UpdateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
}

// UsuarioResponse salida de un usuario en listados (nunca incluye el hash).
type UsuarioResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	RUT      string `json:"rut"`
	Telefono string `json:"telefono"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
}
