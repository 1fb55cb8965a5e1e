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

type NutricionistasHandler struct{ svc service.NutricionistaService }

func NewNutricionistasHandler(svc service.NutricionistaService) *NutricionistasHandler {
	return &NutricionistasHandler{svc: svc}
}

func (h *NutricionistasHandler) Listar(c *gin.Context) {
	usuarioID, ok := pathID(c, "usuario_id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), usuarioID)
	if err != nil {
		log.Error().Err(err).Msg("obtener nutricionistas failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NutricionistasHandler) Validar(c *gin.Context) {
	var req dto.ValidarNutricionistaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Validar(c.Request.Context(), req.UsuarioID)
	if err != nil {
		log.Error().Err(err).Msg("validar nutricionista failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	// The contract carries the outcome in "code"; HTTP status stays 200.
	c.JSON(http.StatusOK, resp)
}

func (h *NutricionistasHandler) Guardar(c *gin.Context) {
	var req dto.ValidarNutricionistaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	registrado, err := h.svc.Guardar(c.Request.Context(), req.UsuarioID)
	if err != nil {
		log.Error().Err(err).Msg("guardar nutricionista failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Nutricionista guardado correctamente",
		"registrado": registrado,
	})
}

func (h *NutricionistasHandler) Asignarme(c *gin.Context) {
	var req dto.AsignarNutricionistaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Asignarme(c.Request.Context(), req.NutricionistaID, req.UsuarioID); err != nil {
		if errors.Is(err, service.ErrYaTieneNutricionista) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "registrado": false})
			return
		}
		log.Error().Err(err).Msg("asignarme nutricionista failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Nutricionista asignado correctamente",
		"registrado": true,
	})
}

func (h *NutricionistasHandler) ListarAsignados(c *gin.Context) {
	nutricionistaID, ok := pathID(c, "nutricionista_id")
	if !ok {
		return
	}
	usuarios, err := h.svc.ListarAsignados(c.Request.Context(), nutricionistaID)
	if err != nil {
		log.Error().Err(err).Msg("listar usuarios asignados failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}

	msg := "Usuarios asignados obtenidos correctamente"
	if len(usuarios) == 0 {
		msg = "No se encontraron usuarios asignados"
		usuarios = []model.UsuarioAsignado{}
	}
	c.JSON(http.StatusOK, dto.UsuariosAsignadosResponse{Message: msg, Usuarios: usuarios})
}

func (h *NutricionistasHandler) Desenlazar(c *gin.Context) {
	var req dto.DesenlazarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Desenlazar(c.Request.Context(), req.NutricionistaID, req.UsuarioID); err != nil {
		if errors.Is(err, service.ErrRelacionNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		log.Error().Err(err).Msg("desenlazar usuario failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario desenlazado del nutricionista exitosamente"})
}

func (h *NutricionistasHandler) Solicitar(c *gin.Context) {
	var req dto.SolicitudNutricionistaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Solicitar(c.Request.Context(), req); err != nil {
		log.Error().Err(err).Msg("solicitar nutricionista failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Solicitud enviada correctamente"})
}

func (h *NutricionistasHandler) AsignacionesPorMes(c *gin.Context) {
	var req dto.RangoFechasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.AsignacionesPorMes(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("asignaciones por mes failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, dto.AsignacionesMesResponse{
		Message: "Asignaciones por mes obtenidas exitosamente",
		Data:    data,
	})
}

func (h *NutricionistasHandler) ContadorEstados(c *gin.Context) {
	var req dto.RangoFechasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.ContadorEstados(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("contador estados failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, dto.ContadorEstadosResponse{
		Message: "Contador de estados de recomendaciones obtenido exitosamente",
		Data:    *data,
	})
}
