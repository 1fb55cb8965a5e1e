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

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Inicio de sesion
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			// Unknown email and wrong password answer identically.
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar godoc
// @Summary Registro de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistroRequest true "Datos de registro"
// @Success 201 {object} dto.RegistroResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /auth/registrar-usuario [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCorreoInvalido),
			errors.Is(err, service.ErrContrasenaDebil),
			errors.Is(err, service.ErrRegistroFallido):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrCorreoRegistrado):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			log.Error().Err(err).Msg("registro failed")
			c.JSON(http.StatusInternalServerError, apierror.New("Ocurrio un error interno al procesar el registro."))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CambiarContrasena godoc
// @Summary Cambio de contrasena del usuario autenticado
// @Tags usuario
// @Accept json
// @Produce json
// @Param body body dto.CambiarContrasenaRequest true "Contrasenas"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /usuario/cambiar-contrasena [put]
func (h *AuthHandler) CambiarContrasena(c *gin.Context) {
	var req dto.CambiarContrasenaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.CambiarContrasena(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrContrasenaDebil):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrContrasenaActual):
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		default:
			log.Error().Err(err).Msg("cambiar contrasena failed")
			c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contrasena actualizada correctamente"})
}
