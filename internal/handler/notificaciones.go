package handler

import (
	"errors"
	"net/http"

	"nutriapp/internal/apierror"
	"nutriapp/internal/dto"
	"nutriapp/internal/model"
	"nutriapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type NotificacionesHandler struct{ svc service.NotificacionService }

func NewNotificacionesHandler(svc service.NotificacionService) *NotificacionesHandler {
	return &NotificacionesHandler{svc: svc}
}

func (h *NotificacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearNotificacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Insertar(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrNotificacionNoCreada) {
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
			return
		}
		log.Error().Err(err).Msg("insertar notificacion failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Notificacion de recomendacion creada exitosamente"})
}

func (h *NotificacionesHandler) PorUsuario(c *gin.Context) {
	usuarioID, ok := pathID(c, "usuario_id")
	if !ok {
		return
	}
	notificaciones, err := h.svc.PorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		log.Error().Err(err).Msg("obtener notificaciones failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}

	msg := "Notificaciones obtenidas correctamente"
	if len(notificaciones) == 0 {
		msg = "No se encontraron notificaciones para este usuario"
		notificaciones = []model.Notificacion{}
	}
	c.JSON(http.StatusOK, dto.NotificacionesResponse{Message: msg, Notificaciones: notificaciones})
}

func (h *NotificacionesHandler) Eliminar(c *gin.Context) {
	var req dto.EliminarNotificacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrNotificacionNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		log.Error().Err(err).Msg("eliminar notificacion failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notificacion eliminada exitosamente"})
}

func (h *NotificacionesHandler) Detalle(c *gin.Context) {
	idNotificacion := c.Param("id_notificacion")
	if idNotificacion == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro 'id_notificacion' es obligatorio"))
		return
	}

	rec, err := h.svc.Recomendacion(c.Request.Context(), idNotificacion)
	if err != nil {
		if errors.Is(err, service.ErrRecomendacionNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		log.Error().Err(err).Msg("obtener recomendacion failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, dto.RecomendacionResponse{
		Message:       "Recomendacion obtenida exitosamente",
		Recomendacion: *rec,
	})
}

func (h *NotificacionesHandler) CambiarEstado(c *gin.Context) {
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarEstado(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrEstadoNoActualizado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		log.Error().Err(err).Msg("cambiar estado notificacion failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Estado de la notificacion actualizado exitosamente"})
}

func (h *NotificacionesHandler) Pendientes(c *gin.Context) {
	usuarioID, ok := pathID(c, "usuario_id")
	if !ok {
		return
	}
	recomendaciones, err := h.svc.PendientesPorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		log.Error().Err(err).Msg("recomendaciones pendientes failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}

	msg := "Recomendaciones pendientes obtenidas exitosamente"
	if len(recomendaciones) == 0 {
		msg = "No hay recomendaciones pendientes para este usuario"
		recomendaciones = []model.Recomendacion{}
	}
	c.JSON(http.StatusOK, dto.RecomendacionesPendientesResponse{
		Message:         msg,
		Recomendaciones: recomendaciones,
	})
}
