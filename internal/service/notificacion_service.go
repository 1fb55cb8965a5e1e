package service

import (
	"context"
	"errors"

	"nutriapp/internal/dto"
	"nutriapp/internal/model"
	"nutriapp/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotificacionNoCreada     = errors.New("No se pudo crear la notificacion de recomendacion")
	ErrNotificacionNoEncontrada = errors.New("No se encontro la notificacion o no se pudo eliminar")
	ErrRecomendacionNoEncontrada = errors.New("No se encontro ninguna recomendacion con ese ID")
	ErrEstadoNoActualizado      = errors.New("No se encontro la notificacion o no se pudo actualizar")
)

type NotificacionService interface {
	Insertar(ctx context.Context, req dto.CrearNotificacionRequest) error
	PorUsuario(ctx context.Context, usuarioID int) ([]model.Notificacion, error)
	Eliminar(ctx context.Context, req dto.EliminarNotificacionRequest) error
	Recomendacion(ctx context.Context, idNotificacion string) (*model.Recomendacion, error)
	CambiarEstado(ctx context.Context, req dto.CambiarEstadoRequest) error
	PendientesPorUsuario(ctx context.Context, usuarioID int) ([]model.Recomendacion, error)
}

type notificacionService struct {
	repo repository.NotificacionRepository
}

func NewNotificacionService(repo repository.NotificacionRepository) NotificacionService {
	return &notificacionService{repo: repo}
}

func (s *notificacionService) Insertar(ctx context.Context, req dto.CrearNotificacionRequest) error {
	dias := req.DiasEjecucion
	if dias == nil {
		dias = []int{}
	}
	exito, err := s.repo.Insertar(ctx, req.IDNotificacion, req.UsuarioID, req.NombreNotificacion,
		req.Recomendacion, *req.HoraEjecucion, *req.MinutoEjecucion, dias)
	if err != nil {
		return err
	}
	if exito != 1 {
		return ErrNotificacionNoCreada
	}
	return nil
}

func (s *notificacionService) PorUsuario(ctx context.Context, usuarioID int) ([]model.Notificacion, error) {
	return s.repo.PorUsuario(ctx, usuarioID)
}

func (s *notificacionService) Eliminar(ctx context.Context, req dto.EliminarNotificacionRequest) error {
	exito, err := s.repo.Eliminar(ctx, req.UsuarioID, req.IDNotificacion)
	if err != nil {
		return err
	}
	if exito != 1 {
		return ErrNotificacionNoEncontrada
	}
	return nil
}

func (s *notificacionService) Recomendacion(ctx context.Context, idNotificacion string) (*model.Recomendacion, error) {
	rec, err := s.repo.Recomendacion(ctx, idNotificacion)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecomendacionNoEncontrada
		}
		return nil, err
	}
	return rec, nil
}

// CambiarEstado approves or rejects a recommendation; on success a history
// row is recorded for the nutritionist's monthly counters.
func (s *notificacionService) CambiarEstado(ctx context.Context, req dto.CambiarEstadoRequest) error {
	exito, err := s.repo.CambiarEstado(ctx, req.IDNotificacion, req.NuevoEstado)
	if err != nil {
		return err
	}
	if exito != 1 {
		return ErrEstadoNoActualizado
	}
	return s.repo.InsertarHistorialRecomendacion(ctx, req.NutricionistaID, req.NuevoEstado)
}

func (s *notificacionService) PendientesPorUsuario(ctx context.Context, usuarioID int) ([]model.Recomendacion, error) {
	return s.repo.PendientesPorUsuario(ctx, usuarioID)
}
