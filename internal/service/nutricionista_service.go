package service

import (
	"context"
	"errors"
	"fmt"

	"nutriapp/internal/dto"
	"nutriapp/internal/model"
	"nutriapp/internal/repository"
	"nutriapp/internal/worker"
)

var (
	ErrYaTieneNutricionista = errors.New("No puedes asignarte un nutricionista porque ya tienes uno asignado")
	ErrRelacionNoEncontrada = errors.New("No se encontro la relacion entre el nutricionista y el usuario")
)

type NutricionistaService interface {
	Obtener(ctx context.Context, usuarioID int) (*dto.NutricionistasResponse, error)
	Validar(ctx context.Context, usuarioID int) (*dto.ValidarNutricionistaResponse, error)
	Guardar(ctx context.Context, usuarioID int) (int, error)
	Asignarme(ctx context.Context, nutricionistaID, usuarioID int) error
	ListarAsignados(ctx context.Context, nutricionistaID int) ([]model.UsuarioAsignado, error)
	Desenlazar(ctx context.Context, nutricionistaID, usuarioID int) error
	Solicitar(ctx context.Context, req dto.SolicitudNutricionistaRequest) error
	AsignacionesPorMes(ctx context.Context, req dto.RangoFechasRequest) ([]model.AsignacionMes, error)
	ContadorEstados(ctx context.Context, req dto.RangoFechasRequest) (*model.ContadorEstados, error)
}

type nutricionistaService struct {
	repo       repository.NutricionistaRepository
	dispatcher *worker.Dispatcher
	adminEmail string
}

func NewNutricionistaService(repo repository.NutricionistaRepository, dispatcher *worker.Dispatcher, adminEmail string) NutricionistaService {
	return &nutricionistaService{repo: repo, dispatcher: dispatcher, adminEmail: adminEmail}
}

// Obtener lists the nutritionists visible to a user and flags whether at
// least one is already assigned to them.
func (s *nutricionistaService) Obtener(ctx context.Context, usuarioID int) (*dto.NutricionistasResponse, error) {
	nutricionistas, err := s.repo.Obtener(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	tieneAsignado := false
	for _, n := range nutricionistas {
		if n.Estado == "Asignado" {
			tieneAsignado = true
			break
		}
	}

	return &dto.NutricionistasResponse{
		Nutricionistas: nutricionistas,
		TieneAsignado:  tieneAsignado,
	}, nil
}

func (s *nutricionistaService) Validar(ctx context.Context, usuarioID int) (*dto.ValidarNutricionistaResponse, error) {
	estado, err := s.repo.Validar(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	switch {
	case estado == "Asignado":
		return &dto.ValidarNutricionistaResponse{Message: "El usuario es nutricionista", Code: 200}, nil
	case estado != "":
		return &dto.ValidarNutricionistaResponse{Message: "El usuario no es nutricionista", Code: 201}, nil
	default:
		return &dto.ValidarNutricionistaResponse{Message: "No se encontro el usuario", Code: 404}, nil
	}
}

func (s *nutricionistaService) Guardar(ctx context.Context, usuarioID int) (int, error) {
	return s.repo.InsertarAsignacion(ctx, usuarioID)
}

// Asignarme links a user to a nutritionist. The enlazar function enforces the
// one-nutritionist rule; on success an assignment history row is recorded.
func (s *nutricionistaService) Asignarme(ctx context.Context, nutricionistaID, usuarioID int) error {
	exito, err := s.repo.Enlazar(ctx, nutricionistaID, usuarioID)
	if err != nil {
		return err
	}
	if exito != 1 {
		return ErrYaTieneNutricionista
	}
	return s.repo.InsertarHistorialAsignacion(ctx, nutricionistaID)
}

func (s *nutricionistaService) ListarAsignados(ctx context.Context, nutricionistaID int) ([]model.UsuarioAsignado, error) {
	return s.repo.ListarAsignados(ctx, nutricionistaID)
}

func (s *nutricionistaService) Desenlazar(ctx context.Context, nutricionistaID, usuarioID int) error {
	exito, err := s.repo.Desenlazar(ctx, nutricionistaID, usuarioID)
	if err != nil {
		return err
	}
	if exito != 1 {
		return ErrRelacionNoEncontrada
	}
	return nil
}

// Solicitar enqueues the "quiero ser nutricionista" email to the
// administrator; delivery happens asynchronously in the worker pool.
func (s *nutricionistaService) Solicitar(ctx context.Context, req dto.SolicitudNutricionistaRequest) error {
	body := fmt.Sprintf("Estimado administrador, me dirijo a usted para solicitar el acceso como Nutricionista en su aplicacion. "+
		"Mi nombre es %s, mi ID de usuario es %d y correo electronico es %s.\n\n"+
		"Agradezco su atencion y quedo a la espera de su respuesta.",
		req.NombreCompleto, req.UsuarioID, req.Correo)

	return s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: s.adminEmail,
		Subject: fmt.Sprintf("Solicitud de Nutricionista - %s", req.NombreCompleto),
		Body:    body,
	})
}

func (s *nutricionistaService) AsignacionesPorMes(ctx context.Context, req dto.RangoFechasRequest) ([]model.AsignacionMes, error) {
	return s.repo.AsignacionesPorMes(ctx, req.FechaInicio, req.FechaFin, req.NutricionistaID)
}

func (s *nutricionistaService) ContadorEstados(ctx context.Context, req dto.RangoFechasRequest) (*model.ContadorEstados, error) {
	return s.repo.ContadorEstados(ctx, req.FechaInicio, req.FechaFin, req.NutricionistaID)
}
