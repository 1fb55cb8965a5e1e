package repository

import (
	"context"

	"nutriapp/internal/model"

	"gorm.io/gorm"
)

type PreguntaRepository interface {
	ListarPreguntas(ctx context.Context) ([]model.Pregunta, error)
	ListarOpciones(ctx context.Context, idPregunta int) ([]model.Opcion, error)
	ImagenCombinacion(ctx context.Context, respuestasJSON string) (*model.Combinacion, error)
}

type preguntaRepo struct{ db *gorm.DB }

func NewPreguntaRepository(db *gorm.DB) PreguntaRepository { return &preguntaRepo{db: db} }

func (r *preguntaRepo) ListarPreguntas(ctx context.Context) ([]model.Pregunta, error) {
	var rows []model.Pregunta
	err := r.db.WithContext(ctx).Raw("SELECT * FROM fu_listar_preguntas()").Scan(&rows).Error
	return rows, err
}

func (r *preguntaRepo) ListarOpciones(ctx context.Context, idPregunta int) ([]model.Opcion, error) {
	var rows []model.Opcion
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_listar_opciones(?)", idPregunta).
		Scan(&rows).Error
	return rows, err
}

// ImagenCombinacion matches an answer set against the stored combinations.
// Returns gorm.ErrRecordNotFound when no combination matches.
func (r *preguntaRepo) ImagenCombinacion(ctx context.Context, respuestasJSON string) (*model.Combinacion, error) {
	var row model.Combinacion
	res := r.db.WithContext(ctx).
		Raw("SELECT * FROM fu_obtener_imagen_combinacion(?::JSON)", respuestasJSON).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
