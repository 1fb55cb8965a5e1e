package repository

import (
	"context"
	"fmt"
	"strings"

	"nutriapp/internal/model"

	"gorm.io/gorm"
)

type NotificacionRepository interface {
	Insertar(ctx context.Context, idNotificacion string, usuarioID int, nombre, recomendacion string, hora, minuto int, dias []int) (int, error)
	PorUsuario(ctx context.Context, usuarioID int) ([]model.Notificacion, error)
	Eliminar(ctx context.Context, usuarioID int, idNotificacion string) (int, error)
	Recomendacion(ctx context.Context, idNotificacion string) (*model.Recomendacion, error)
	CambiarEstado(ctx context.Context, idNotificacion, nuevoEstado string) (int, error)
	InsertarHistorialRecomendacion(ctx context.Context, nutricionistaID int, estado string) error
	PendientesPorUsuario(ctx context.Context, usuarioID int) ([]model.Recomendacion, error)
}

type notificacionRepo struct{ db *gorm.DB }

func NewNotificacionRepository(db *gorm.DB) NotificacionRepository {
	return &notificacionRepo{db: db}
}

// pgIntArray renders an INTEGER[] literal for the dias_ejecucion parameter.
func pgIntArray(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (r *notificacionRepo) Insertar(ctx context.Context, idNotificacion string, usuarioID int, nombre, recomendacion string, hora, minuto int, dias []int) (int, error) {
	var exito int
	err := r.db.WithContext(ctx).
		Raw("SELECT fu_insertar_notificacion_recomendacion(?, ?, ?, ?, ?, ?, ?::INTEGER[])",
			idNotificacion, usuarioID, nombre, recomendacion, hora, minuto, pgIntArray(dias)).
		Scan(&exito).Error
	return exito, err
}

func (r *notificacionRepo) PorUsuario(ctx context.Context, usuarioID int) ([]model.Notificacion, error) {
	var rows []model.Notificacion
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_obtener_notificaciones_por_usuario(?)", usuarioID).
		Scan(&rows).Error
	return rows, err
}

func (r *notificacionRepo) Eliminar(ctx context.Context, usuarioID int, idNotificacion string) (int, error) {
	var exito int
	err := r.db.WithContext(ctx).
		Raw("SELECT fu_eliminar_notificacion_recomendacion(?, ?) AS exito", usuarioID, idNotificacion).
		Scan(&exito).Error
	return exito, err
}

func (r *notificacionRepo) Recomendacion(ctx context.Context, idNotificacion string) (*model.Recomendacion, error) {
	var row model.Recomendacion
	res := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_obtener_recomendacion(?)", idNotificacion).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *notificacionRepo) CambiarEstado(ctx context.Context, idNotificacion, nuevoEstado string) (int, error) {
	var resultado int
	err := r.db.WithContext(ctx).
		Raw("SELECT fu_cambiar_estado_notificacion(?, ?) AS resultado", idNotificacion, nuevoEstado).
		Scan(&resultado).Error
	return resultado, err
}

func (r *notificacionRepo) InsertarHistorialRecomendacion(ctx context.Context, nutricionistaID int, estado string) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO historial_recomendacion_usuario (nutricionista_id, estado_recomendacion, fecha)
		      VALUES (?, ?, CURRENT_DATE)`, nutricionistaID, estado).
		Error
}

func (r *notificacionRepo) PendientesPorUsuario(ctx context.Context, usuarioID int) ([]model.Recomendacion, error) {
	var rows []model.Recomendacion
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_obtener_recomendacion_pendientes_por_usuario(?)", usuarioID).
		Scan(&rows).Error
	return rows, err
}
