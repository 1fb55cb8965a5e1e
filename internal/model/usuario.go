package model

// Usuario is the credential record stored in the usuarios table.
// Rol: "USUARIO" | "NUTRICIONISTA" | "ADMIN"
// Genero: "Masculino" | "Femenino" | "Otro"
//
// Contrasena holds the bcrypt hash (>= 60 chars once migrated). It is never
// serialized into API responses.
type Usuario struct {
	IDUsuario      int    `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Identificador  string `gorm:"column:identificador" json:"identificador"`
	Correo         string `gorm:"column:correo" json:"correo"`
	Contrasena     string `gorm:"column:contrasena" json:"-"`
	NombreCompleto string `gorm:"column:nombre_completo" json:"nombre_completo"`
	Rol            string `gorm:"column:rol" json:"rol"`
	Genero         string `gorm:"column:genero" json:"genero"`
	Activo         bool   `gorm:"column:activo" json:"activo"`
}

func (Usuario) TableName() string { return "usuarios" }
