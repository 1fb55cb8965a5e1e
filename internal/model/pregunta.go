package model

// Pregunta is one row returned by fu_listar_preguntas.
type Pregunta struct {
	IDPregunta int    `gorm:"column:id_pregunta" json:"id_pregunta"`
	Enunciado  string `gorm:"column:enunciado" json:"enunciado"`
	Orden      int    `gorm:"column:orden" json:"orden"`
}

// Opcion is one row returned by fu_listar_opciones.
type Opcion struct {
	IDOpcion   int    `gorm:"column:id_opcion" json:"id_opcion"`
	IDPregunta int    `gorm:"column:id_pregunta" json:"id_pregunta"`
	Texto      string `gorm:"column:texto" json:"texto"`
}

// Combinacion is the best-match row returned by fu_obtener_imagen_combinacion.
type Combinacion struct {
	CombinacionID int    `gorm:"column:combinacion_id" json:"combinacion_id"`
	ImagenURL     string `gorm:"column:imagen_url" json:"imagen_url"`
	Coincidencias int    `gorm:"column:coincidencias" json:"coincidencias"`
}
