package dto

import "nutriapp/internal/model"

type ModificarUsuarioRequest struct {
	UsuarioID        int    `json:"usuario_id"          validate:"required"`
	NombreApellidos  string `json:"p_nombre_apellidos"  validate:"required,min=2,max=100"`
	Genero           string `json:"p_genero"            validate:"required,oneof=Masculino Femenino Otro"`
}

type ModificarUsuarioResponse struct {
	Message string              `json:"message"`
	Usuario UsuarioModificado   `json:"usuario"`
}

type UsuarioModificado struct {
	IDUsuario      int    `json:"id_usuario"`
	NombreCompleto string `json:"nombre_completo"`
	Genero         string `json:"genero"`
}

type SolicitudNutricionistaRequest struct {
	UsuarioID      int    `json:"usuario_id"      validate:"required"`
	NombreCompleto string `json:"nombre_completo" validate:"required"`
	Correo         string `json:"correo"          validate:"required,email"`
}

type NutricionistasResponse struct {
	Nutricionistas []model.Nutricionista `json:"nutricionistas"`
	TieneAsignado  bool                  `json:"tiene_asignado"`
}

type ValidarNutricionistaRequest struct {
	UsuarioID int `json:"usuario_id" validate:"required"`
}

type ValidarNutricionistaResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type AsignarNutricionistaRequest struct {
	NutricionistaID int `json:"nutricionista_id" validate:"required"`
	UsuarioID       int `json:"usuario_id"       validate:"required"`
}

type DesenlazarUsuarioRequest struct {
	NutricionistaID int `json:"nutricionista_id" validate:"required"`
	UsuarioID       int `json:"usuario_id"       validate:"required"`
}

type UsuariosAsignadosResponse struct {
	Message  string                  `json:"message"`
	Usuarios []model.UsuarioAsignado `json:"usuarios"`
}

type RangoFechasRequest struct {
	FechaInicio     string `json:"fecha_inicio"     validate:"required,datetime=2006-01-02"`
	FechaFin        string `json:"fecha_fin"        validate:"required,datetime=2006-01-02"`
	NutricionistaID int    `json:"nutricionista_id" validate:"required,gt=0"`
}

type AsignacionesMesResponse struct {
	Message string                `json:"message"`
	Data    []model.AsignacionMes `json:"data"`
}

type ContadorEstadosResponse struct {
	Message string                `json:"message"`
	Data    model.ContadorEstados `json:"data"`
}
