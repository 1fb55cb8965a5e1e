package model

// Nutricionista is one row returned by fu_obtener_nutricionistas.
// Estado: "Disponible" | "Asignado"
type Nutricionista struct {
	NutricionistaID int    `gorm:"column:nutricionista_id" json:"nutricionista_id"`
	NombreCompleto  string `gorm:"column:nombre_completo" json:"nombre_completo"`
	Correo          string `gorm:"column:correo" json:"correo"`
	Genero          string `gorm:"column:genero" json:"genero"`
	Estado          string `gorm:"column:estado" json:"estado"`
}

// UsuarioAsignado is one row returned by fu_listar_usuario_asignados.
type UsuarioAsignado struct {
	IDUsuario      int    `gorm:"column:id_usuario" json:"id_usuario"`
	Identificador  string `gorm:"column:identificador" json:"identificador"`
	NombreCompleto string `gorm:"column:nombre_completo" json:"nombre_completo"`
	Correo         string `gorm:"column:correo" json:"correo"`
	Genero         string `gorm:"column:genero" json:"genero"`
	FechaAsignacion string `gorm:"column:fecha_asignacion" json:"fecha_asignacion"`
}

// AsignacionMes is one row returned by obtener_asignaciones_por_mes.
type AsignacionMes struct {
	Mes                  int `gorm:"column:mes" json:"mes"`
	Anio                 int `gorm:"column:anio" json:"anio"`
	CantidadAsignaciones int `gorm:"column:cantidad_asignaciones" json:"cantidad_asignaciones"`
}

// ContadorEstados is the single row returned by
// obtener_contador_estados_recomendacion.
type ContadorEstados struct {
	Aprobados  int `gorm:"column:aprobados" json:"aprobados"`
	Rechazados int `gorm:"column:rechazados" json:"rechazados"`
}
