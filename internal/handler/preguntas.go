package handler

import (
	"errors"
	"net/http"

	"nutriapp/internal/apierror"
	"nutriapp/internal/dto"
	"nutriapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PreguntasHandler struct{ svc service.PreguntaService }

func NewPreguntasHandler(svc service.PreguntaService) *PreguntasHandler {
	return &PreguntasHandler{svc: svc}
}

func (h *PreguntasHandler) Listar(c *gin.Context) {
	preguntas, err := h.svc.ListarPreguntas(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listar preguntas failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, preguntas)
}

func (h *PreguntasHandler) ListarOpciones(c *gin.Context) {
	idPregunta, ok := pathID(c, "id_pregunta")
	if !ok {
		return
	}
	opciones, err := h.svc.ListarOpciones(c.Request.Context(), idPregunta)
	if err != nil {
		log.Error().Err(err).Msg("listar opciones failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, opciones)
}

// ImagenCombinacion matches a full quiz answer set to its stored image.
func (h *PreguntasHandler) ImagenCombinacion(c *gin.Context) {
	var req dto.ImagenCombinacionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	comb, err := h.svc.ImagenCombinacion(c.Request.Context(), req.Respuestas)
	if err != nil {
		if errors.Is(err, service.ErrCombinacionNoEncontrada) {
			c.JSON(http.StatusNotFound, dto.CombinacionResponse{
				Message:     err.Error(),
				Combinacion: nil,
			})
			return
		}
		log.Error().Err(err).Msg("imagen combinacion failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, dto.CombinacionResponse{
		Message:     "Combinacion encontrada exitosamente",
		Combinacion: comb,
	})
}
