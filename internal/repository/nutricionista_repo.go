package repository

import (
	"context"

	"nutriapp/internal/model"

	"gorm.io/gorm"
)

type NutricionistaRepository interface {
	Obtener(ctx context.Context, usuarioID int) ([]model.Nutricionista, error)
	Validar(ctx context.Context, usuarioID int) (string, error)
	InsertarAsignacion(ctx context.Context, usuarioID int) (int, error)
	Enlazar(ctx context.Context, nutricionistaID, usuarioID int) (int, error)
	InsertarHistorialAsignacion(ctx context.Context, nutricionistaID int) error
	ListarAsignados(ctx context.Context, nutricionistaID int) ([]model.UsuarioAsignado, error)
	Desenlazar(ctx context.Context, nutricionistaID, usuarioID int) (int, error)
	AsignacionesPorMes(ctx context.Context, fechaInicio, fechaFin string, nutricionistaID int) ([]model.AsignacionMes, error)
	ContadorEstados(ctx context.Context, fechaInicio, fechaFin string, nutricionistaID int) (*model.ContadorEstados, error)
}

type nutricionistaRepo struct{ db *gorm.DB }

func NewNutricionistaRepository(db *gorm.DB) NutricionistaRepository {
	return &nutricionistaRepo{db: db}
}

func (r *nutricionistaRepo) Obtener(ctx context.Context, usuarioID int) ([]model.Nutricionista, error) {
	var rows []model.Nutricionista
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_obtener_nutricionistas(?)", usuarioID).
		Scan(&rows).Error
	return rows, err
}

// Validar returns the assignment state reported by fu_validar_nutricionista,
// or "" when the user is unknown.
func (r *nutricionistaRepo) Validar(ctx context.Context, usuarioID int) (string, error) {
	var estado string
	res := r.db.WithContext(ctx).
		Raw("SELECT fu_validar_nutricionista(?)", usuarioID).
		Scan(&estado)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", nil
	}
	return estado, nil
}

func (r *nutricionistaRepo) InsertarAsignacion(ctx context.Context, usuarioID int) (int, error) {
	var registrado int
	err := r.db.WithContext(ctx).
		Raw("SELECT insertar_asignacion_nutricionista(?)", usuarioID).
		Scan(&registrado).Error
	return registrado, err
}

func (r *nutricionistaRepo) Enlazar(ctx context.Context, nutricionistaID, usuarioID int) (int, error) {
	var resultado int
	err := r.db.WithContext(ctx).
		Raw("SELECT fu_enlazar_nutricionista_usuario(?, ?) AS resultado", nutricionistaID, usuarioID).
		Scan(&resultado).Error
	return resultado, err
}

func (r *nutricionistaRepo) InsertarHistorialAsignacion(ctx context.Context, nutricionistaID int) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO historial_asignacion_usuario (nutricionista_id) VALUES (?)", nutricionistaID).
		Error
}

func (r *nutricionistaRepo) ListarAsignados(ctx context.Context, nutricionistaID int) ([]model.UsuarioAsignado, error) {
	var rows []model.UsuarioAsignado
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_listar_usuario_asignados(?)", nutricionistaID).
		Scan(&rows).Error
	return rows, err
}

func (r *nutricionistaRepo) Desenlazar(ctx context.Context, nutricionistaID, usuarioID int) (int, error) {
	var resultado int
	err := r.db.WithContext(ctx).
		Raw("SELECT fu_desenlazar_usuario(?, ?) AS resultado", nutricionistaID, usuarioID).
		Scan(&resultado).Error
	return resultado, err
}

func (r *nutricionistaRepo) AsignacionesPorMes(ctx context.Context, fechaInicio, fechaFin string, nutricionistaID int) ([]model.AsignacionMes, error) {
	var rows []model.AsignacionMes
	err := r.db.WithContext(ctx).
		Raw(`SELECT mes, anio, cantidad_asignaciones
		     FROM obtener_asignaciones_por_mes(?, ?, ?)`,
			fechaInicio, fechaFin, nutricionistaID).
		Scan(&rows).Error
	return rows, err
}

func (r *nutricionistaRepo) ContadorEstados(ctx context.Context, fechaInicio, fechaFin string, nutricionistaID int) (*model.ContadorEstados, error) {
	var row model.ContadorEstados
	err := r.db.WithContext(ctx).
		Raw(`SELECT aprobados, rechazados
		     FROM obtener_contador_estados_recomendacion(?, ?, ?)`,
			fechaInicio, fechaFin, nutricionistaID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
