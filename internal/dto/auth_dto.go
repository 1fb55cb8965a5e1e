package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Field names mirror the parameters of the stored functions they feed.

type LoginRequest struct {
	Correo     string `json:"p_correo"   validate:"required"`
	Contrasena string `json:"p_contra"   validate:"required"`
}

type RegistroRequest struct {
	Correo         string `json:"p_correo"          validate:"required"`
	Contrasena     string `json:"p_contrasena"      validate:"required"`
	NombreCompleto string `json:"p_nombre_completo" validate:"required"`
	Genero         string `json:"p_genero"          validate:"required,oneof=Masculino Femenino Otro"`
}

type CambiarContrasenaRequest struct {
	UsuarioID       int    `json:"p_usuario_id"    validate:"required"`
	ContrasenaActual string `json:"p_contra_actual" validate:"required"`
	ContrasenaNueva  string `json:"p_contra_nueva"  validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Verification   bool   `json:"verification"`
	Mensaje        string `json:"mensaje"`
	Token          string `json:"token"`
	ID             int    `json:"id"`
	Rol            string `json:"rol"`
	NombreCompleto string `json:"nombre_completo"`
	Correo         string `json:"correo"`
	Genero         string `json:"genero"`
}

type RegistroResponse struct {
	Message       string `json:"message"`
	Identificador string `json:"identificador"`
	Token         string `json:"token"`
}
