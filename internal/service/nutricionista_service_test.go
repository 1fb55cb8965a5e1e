package service

import (
	"context"
	"testing"

	"nutriapp/internal/model"

	"github.com/stretchr/testify/assert"
)

type stubNutricionistaRepo struct {
	nutricionistas []model.Nutricionista
	estado         string
	enlazar        int
	desenlazar     int

	historialCalls int
}

func (r *stubNutricionistaRepo) Obtener(context.Context, int) ([]model.Nutricionista, error) {
	return r.nutricionistas, nil
}
func (r *stubNutricionistaRepo) Validar(context.Context, int) (string, error) {
	return r.estado, nil
}
func (r *stubNutricionistaRepo) InsertarAsignacion(context.Context, int) (int, error) {
	return 1, nil
}
func (r *stubNutricionistaRepo) Enlazar(context.Context, int, int) (int, error) {
	return r.enlazar, nil
}
func (r *stubNutricionistaRepo) InsertarHistorialAsignacion(context.Context, int) error {
	r.historialCalls++
	return nil
}
func (r *stubNutricionistaRepo) ListarAsignados(context.Context, int) ([]model.UsuarioAsignado, error) {
	return nil, nil
}
func (r *stubNutricionistaRepo) Desenlazar(context.Context, int, int) (int, error) {
	return r.desenlazar, nil
}
func (r *stubNutricionistaRepo) AsignacionesPorMes(context.Context, string, string, int) ([]model.AsignacionMes, error) {
	return nil, nil
}
func (r *stubNutricionistaRepo) ContadorEstados(context.Context, string, string, int) (*model.ContadorEstados, error) {
	return &model.ContadorEstados{}, nil
}

func TestNutricionistaObtener_TieneAsignado(t *testing.T) {
	repo := &stubNutricionistaRepo{nutricionistas: []model.Nutricionista{
		{NutricionistaID: 1, Estado: "Disponible"},
		{NutricionistaID: 2, Estado: "Asignado"},
	}}
	svc := NewNutricionistaService(repo, nil, "admin@nutriapp.com")

	resp, err := svc.Obtener(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, resp.TieneAsignado)
	assert.Len(t, resp.Nutricionistas, 2)
}

func TestNutricionistaObtener_SinAsignacion(t *testing.T) {
	repo := &stubNutricionistaRepo{nutricionistas: []model.Nutricionista{
		{NutricionistaID: 1, Estado: "Disponible"},
	}}
	svc := NewNutricionistaService(repo, nil, "admin@nutriapp.com")

	resp, err := svc.Obtener(context.Background(), 7)
	assert.NoError(t, err)
	assert.False(t, resp.TieneAsignado)
}

func TestNutricionistaValidar_CodeMapping(t *testing.T) {
	cases := []struct {
		estado string
		code   int
	}{
		{"Asignado", 200},
		{"Pendiente", 201},
		{"", 404},
	}
	for _, tc := range cases {
		svc := NewNutricionistaService(&stubNutricionistaRepo{estado: tc.estado}, nil, "")
		resp, err := svc.Validar(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, tc.code, resp.Code, "estado: %q", tc.estado)
	}
}

func TestAsignarme_RecordsHistorial(t *testing.T) {
	repo := &stubNutricionistaRepo{enlazar: 1}
	svc := NewNutricionistaService(repo, nil, "")

	assert.NoError(t, svc.Asignarme(context.Background(), 3, 7))
	assert.Equal(t, 1, repo.historialCalls)
}

func TestAsignarme_AlreadyAssigned(t *testing.T) {
	repo := &stubNutricionistaRepo{enlazar: 0}
	svc := NewNutricionistaService(repo, nil, "")

	err := svc.Asignarme(context.Background(), 3, 7)
	assert.ErrorIs(t, err, ErrYaTieneNutricionista)
	assert.Equal(t, 0, repo.historialCalls)
}

func TestDesenlazar_MissingRelation(t *testing.T) {
	svc := NewNutricionistaService(&stubNutricionistaRepo{desenlazar: 0}, nil, "")

	err := svc.Desenlazar(context.Background(), 3, 7)
	assert.ErrorIs(t, err, ErrRelacionNoEncontrada)
}
