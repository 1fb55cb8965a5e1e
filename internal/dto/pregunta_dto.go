package dto

import "nutriapp/internal/model"

// Respuesta is one answered quiz question sent by the client.
type Respuesta struct {
	PreguntaID int `json:"pregunta_id" validate:"required"`
	OpcionID   int `json:"opcion_id"   validate:"required"`
}

type ImagenCombinacionRequest struct {
	Respuestas []Respuesta `json:"respuestas" validate:"required,min=1,dive"`
}

type CombinacionResponse struct {
	Message     string             `json:"message"`
	Combinacion *model.Combinacion `json:"combinacion"`
}
