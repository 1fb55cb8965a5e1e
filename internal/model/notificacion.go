package model

// Notificacion is one row returned by fu_obtener_notificaciones_por_usuario.
// DiasEjecucion holds weekday numbers (0=domingo .. 6=sabado); empty = una vez.
type Notificacion struct {
	IDNotificacion     string `gorm:"column:id_notificacion" json:"id_notificacion"`
	UsuarioID          int    `gorm:"column:usuario_id" json:"usuario_id"`
	NombreNotificacion string `gorm:"column:nombre_notificacion" json:"nombre_notificacion"`
	HoraEjecucion      int    `gorm:"column:hora_ejecucion" json:"hora_ejecucion"`
	MinutoEjecucion    int    `gorm:"column:minuto_ejecucion" json:"minuto_ejecucion"`
	Estado             string `gorm:"column:estado" json:"estado"`
}

// Recomendacion is the row returned by fu_obtener_recomendacion and, with
// estado "Pendiente", by fu_obtener_recomendacion_pendientes_por_usuario.
type Recomendacion struct {
	IDNotificacion     string `gorm:"column:id_notificacion" json:"id_notificacion"`
	UsuarioID          int    `gorm:"column:usuario_id" json:"usuario_id"`
	NombreNotificacion string `gorm:"column:nombre_notificacion" json:"nombre_notificacion"`
	Recomendacion      string `gorm:"column:recomendacion" json:"recomendacion"`
	Estado             string `gorm:"column:estado" json:"estado"`
}
