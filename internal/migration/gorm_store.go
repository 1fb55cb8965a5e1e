package migration

import (
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// backupNameRe guards the identifiers we interpolate into DDL — table names
// cannot be bound as parameters.
var backupNameRe = regexp.MustCompile(`^usuarios_backup_[0-9_]+$`)

type gormStore struct{ db *gorm.DB }

// NewStore returns the SQL-backed Store used in production.
func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) Estado(ctx context.Context) (*Estado, error) {
	var e Estado
	err := s.db.WithContext(ctx).Raw(`
		SELECT
		  COUNT(*) AS total_usuarios,
		  COUNT(CASE WHEN LENGTH(contrasena) < 60 THEN 1 END) AS sin_encriptar,
		  COUNT(CASE WHEN LENGTH(contrasena) >= 60 THEN 1 END) AS ya_encriptadas
		FROM usuarios
		WHERE activo = true`).Scan(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *gormStore) CrearBackup(ctx context.Context, nombre string) error {
	if !backupNameRe.MatchString(nombre) {
		return fmt.Errorf("nombre de backup invalido: %q", nombre)
	}
	return s.db.WithContext(ctx).
		Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s AS SELECT * FROM usuarios", nombre)).
		Error
}

func (s *gormStore) AnchoColumna(ctx context.Context) (int, error) {
	var ancho int
	err := s.db.WithContext(ctx).Raw(`
		SELECT character_maximum_length
		FROM information_schema.columns
		WHERE table_name = 'usuarios' AND column_name = 'contrasena'`).Scan(&ancho).Error
	return ancho, err
}

func (s *gormStore) EnsancharColumna(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Exec("ALTER TABLE usuarios ALTER COLUMN contrasena TYPE VARCHAR(100)").
		Error
}

func (s *gormStore) SinEncriptar(ctx context.Context) ([]Credencial, error) {
	var creds []Credencial
	err := s.db.WithContext(ctx).Raw(`
		SELECT id_usuario, correo, contrasena
		FROM usuarios
		WHERE LENGTH(contrasena) < 60 AND activo = true
		ORDER BY id_usuario`).Scan(&creds).Error
	return creds, err
}

func (s *gormStore) ActualizarContrasena(ctx context.Context, hash string, id int) error {
	return s.db.WithContext(ctx).
		Exec("UPDATE usuarios SET contrasena = ? WHERE id_usuario = ?", hash, id).
		Error
}

func (s *gormStore) Muestra(ctx context.Context, limit int) ([]Credencial, error) {
	var creds []Credencial
	err := s.db.WithContext(ctx).Raw(`
		SELECT id_usuario, correo, contrasena
		FROM usuarios
		WHERE LENGTH(contrasena) >= 60 AND activo = true
		LIMIT ?`, limit).Scan(&creds).Error
	return creds, err
}

// Restaurar drops the live table and renames the backup in its place inside
// one transaction: either both steps land or the original table is untouched.
func (s *gormStore) Restaurar(ctx context.Context, backup string) error {
	if !backupNameRe.MatchString(backup) {
		return fmt.Errorf("nombre de backup invalido: %q", backup)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DROP TABLE IF EXISTS usuarios CASCADE").Error; err != nil {
			return err
		}
		return tx.Exec(fmt.Sprintf("ALTER TABLE %s RENAME TO usuarios", backup)).Error
	})
}
