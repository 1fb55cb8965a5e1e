package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nutriapp/internal/dto"
	"nutriapp/internal/model"
	"nutriapp/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrCombinacionNoEncontrada signals that no stored combination matches the
// submitted answer set.
var ErrCombinacionNoEncontrada = errors.New("No se encontro ninguna combinacion que coincida con las respuestas proporcionadas")

// The quiz catalog changes rarely; cache generously.
const preguntasCacheTTL = 4 * time.Hour

type PreguntaService interface {
	ListarPreguntas(ctx context.Context) ([]model.Pregunta, error)
	ListarOpciones(ctx context.Context, idPregunta int) ([]model.Opcion, error)
	ImagenCombinacion(ctx context.Context, respuestas []dto.Respuesta) (*model.Combinacion, error)
}

type preguntaService struct {
	repo repository.PreguntaRepository
	rdb  *redis.Client
}

func NewPreguntaService(repo repository.PreguntaRepository, rdb *redis.Client) PreguntaService {
	return &preguntaService{repo: repo, rdb: rdb}
}

func (s *preguntaService) ListarPreguntas(ctx context.Context) ([]model.Pregunta, error) {
	const cacheKey = "preguntas:listado"

	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var preguntas []model.Pregunta
		if jsonErr := json.Unmarshal(cached, &preguntas); jsonErr == nil {
			return preguntas, nil
		}
	}

	preguntas, err := s.repo.ListarPreguntas(ctx)
	if err != nil {
		return nil, err
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(preguntas); jsonErr == nil {
		_ = s.rdb.Set(context.Background(), cacheKey, b, preguntasCacheTTL).Err()
	}

	return preguntas, nil
}

func (s *preguntaService) ListarOpciones(ctx context.Context, idPregunta int) ([]model.Opcion, error) {
	return s.repo.ListarOpciones(ctx, idPregunta)
}

// ImagenCombinacion serializes the answers and lets the database pick the
// best-matching combination. Matches are cached per exact answer set.
func (s *preguntaService) ImagenCombinacion(ctx context.Context, respuestas []dto.Respuesta) (*model.Combinacion, error) {
	raw, err := json.Marshal(respuestas)
	if err != nil {
		return nil, err
	}
	cacheKey := "combinacion:" + string(raw)

	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var comb model.Combinacion
		if jsonErr := json.Unmarshal(cached, &comb); jsonErr == nil {
			return &comb, nil
		}
	}

	comb, err := s.repo.ImagenCombinacion(ctx, string(raw))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCombinacionNoEncontrada
		}
		return nil, err
	}

	if b, jsonErr := json.Marshal(comb); jsonErr == nil {
		_ = s.rdb.Set(context.Background(), cacheKey, b, preguntasCacheTTL).Err()
	}

	return comb, nil
}
