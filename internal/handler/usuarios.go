package handler

import (
	"errors"
	"net/http"

	"nutriapp/internal/apierror"
	"nutriapp/internal/dto"
	"nutriapp/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UsuariosHandler serves the plain list/update endpoints: no business logic
// beyond validation, rows pass straight through from the store.
type UsuariosHandler struct{ repo repository.UsuarioRepository }

func NewUsuariosHandler(repo repository.UsuarioRepository) *UsuariosHandler {
	return &UsuariosHandler{repo: repo}
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, err := h.repo.Listar(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listar usuarios failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuariosHandler) Modificar(c *gin.Context) {
	var req dto.ModificarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	u, err := h.repo.Modificar(c.Request.Context(), req.UsuarioID, req.NombreApellidos, req.Genero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
			return
		}
		log.Error().Err(err).Msg("modificar usuario failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}

	c.JSON(http.StatusOK, dto.ModificarUsuarioResponse{
		Message: "Usuario actualizado correctamente",
		Usuario: dto.UsuarioModificado{
			IDUsuario:      u.IDUsuario,
			NombreCompleto: u.NombreCompleto,
			Genero:         u.Genero,
		},
	})
}
