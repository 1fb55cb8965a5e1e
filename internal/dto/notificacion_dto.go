package dto

import "nutriapp/internal/model"

type CrearNotificacionRequest struct {
	IDNotificacion     string `json:"id_notificacion"     validate:"required"`
	UsuarioID          int    `json:"usuario_id"          validate:"required"`
	NombreNotificacion string `json:"nombre_notificacion" validate:"required"`
	Recomendacion      string `json:"recomendacion"       validate:"required"`
	HoraEjecucion      *int   `json:"hora_ejecucion"      validate:"required,min=0,max=23"`
	MinutoEjecucion    *int   `json:"minuto_ejecucion"    validate:"required,min=0,max=59"`
	DiasEjecucion      []int  `json:"dias_ejecucion"`
}

type EliminarNotificacionRequest struct {
	UsuarioID      int    `json:"usuario_id"      validate:"required"`
	IDNotificacion string `json:"id_notificacion" validate:"required"`
}

type CambiarEstadoRequest struct {
	IDNotificacion  string `json:"id_notificacion" validate:"required"`
	NuevoEstado     string `json:"nuevo_estado"    validate:"required"`
	NutricionistaID int    `json:"nutricionista_id"`
}

type NotificacionesResponse struct {
	Message        string               `json:"message"`
	Notificaciones []model.Notificacion `json:"notificaciones"`
}

type RecomendacionResponse struct {
	Message       string              `json:"message"`
	Recomendacion model.Recomendacion `json:"recomendacion"`
}

type RecomendacionesPendientesResponse struct {
	Message         string                `json:"message"`
	Recomendaciones []model.Recomendacion `json:"recomendaciones"`
}
