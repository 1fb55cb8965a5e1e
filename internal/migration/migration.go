// Package migration upgrades legacy plaintext credentials to bcrypt.
//
// The job is operator-invoked and expects exclusive access to the usuarios
// table (maintenance window): rows are updated one by one without locking
// against concurrent writers. A dated backup table created before any
// mutation is the sole rollback mechanism.
package migration

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// hashedThreshold is the detection signal for "already hashed": a bcrypt
	// encoding is always >= 60 chars, legacy plaintext shorter. A legacy
	// password that happens to reach 60 chars would be skipped and left
	// unusable — known gap, kept deliberately until product signs off on a
	// different detector.
	hashedThreshold = 60

	// columnWidth is the minimum capacity the contrasena column needs to
	// store a bcrypt encoding with headroom.
	columnWidth = 100

	bcryptCost = 10
)

// Estado is the hashed/unhashed census of active credentials.
type Estado struct {
	Total         int `gorm:"column:total_usuarios"`
	SinEncriptar  int `gorm:"column:sin_encriptar"`
	YaEncriptadas int `gorm:"column:ya_encriptadas"`
}

// Credencial is the slice of a user row the migration needs.
type Credencial struct {
	IDUsuario  int    `gorm:"column:id_usuario"`
	Correo     string `gorm:"column:correo"`
	Contrasena string `gorm:"column:contrasena"`
}

// RowError records one failed row; the batch continues past it.
type RowError struct {
	IDUsuario int
	Correo    string
	Err       error
}

// Result is the full migration report.
type Result struct {
	Backup   string
	Antes    Estado
	Despues  Estado
	Exitosas int
	Errores  []RowError
	// NoOp is true when there was nothing to migrate and no backup was made.
	NoOp bool
}

// Store is the migration's port onto the credential table. The production
// implementation runs SQL; tests substitute an in-memory fake.
type Store interface {
	Estado(ctx context.Context) (*Estado, error)
	// CrearBackup copies the credential table into nombre. Create-if-absent:
	// an existing backup is never overwritten.
	CrearBackup(ctx context.Context, nombre string) error
	AnchoColumna(ctx context.Context) (int, error)
	EnsancharColumna(ctx context.Context) error
	SinEncriptar(ctx context.Context) ([]Credencial, error)
	ActualizarContrasena(ctx context.Context, hash string, id int) error
	Muestra(ctx context.Context, limit int) ([]Credencial, error)
	// Restaurar atomically replaces the credential table with the backup.
	Restaurar(ctx context.Context, backup string) error
}

// BackupName derives the dated backup table name.
func BackupName(now time.Time) string {
	return "usuarios_backup_" + now.Format("2006_01_02")
}

// Migrate hashes every active credential whose stored password is below the
// hashed-length threshold. Safe to re-run: already-hashed rows are skipped,
// the backup is created once, and per-row failures never abort the batch.
func Migrate(ctx context.Context, store Store, now time.Time) (*Result, error) {
	antes, err := store.Estado(ctx)
	if err != nil {
		return nil, fmt.Errorf("estado inicial: %w", err)
	}

	res := &Result{Antes: *antes}
	if antes.SinEncriptar == 0 {
		res.Despues = *antes
		res.NoOp = true
		return res, nil
	}

	res.Backup = BackupName(now)
	if err := store.CrearBackup(ctx, res.Backup); err != nil {
		return nil, fmt.Errorf("crear backup %s: %w", res.Backup, err)
	}

	ancho, err := store.AnchoColumna(ctx)
	if err != nil {
		return nil, fmt.Errorf("ancho de columna: %w", err)
	}
	if ancho < columnWidth {
		if err := store.EnsancharColumna(ctx); err != nil {
			return nil, fmt.Errorf("ensanchar columna: %w", err)
		}
	}

	pendientes, err := store.SinEncriptar(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar sin encriptar: %w", err)
	}

	for _, cred := range pendientes {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Contrasena), bcryptCost)
		if err != nil {
			res.Errores = append(res.Errores, RowError{IDUsuario: cred.IDUsuario, Correo: cred.Correo, Err: err})
			continue
		}
		if err := store.ActualizarContrasena(ctx, string(hash), cred.IDUsuario); err != nil {
			res.Errores = append(res.Errores, RowError{IDUsuario: cred.IDUsuario, Correo: cred.Correo, Err: err})
			continue
		}
		res.Exitosas++
	}

	despues, err := store.Estado(ctx)
	if err != nil {
		return nil, fmt.Errorf("estado final: %w", err)
	}
	res.Despues = *despues
	return res, nil
}

// Verify returns up to limit hashed credentials for a manual spot check.
// Read-only; callers must redact the hash before displaying it.
func Verify(ctx context.Context, store Store, limit int) ([]Credencial, error) {
	return store.Muestra(ctx, limit)
}

// Restore swaps the backup table in for the current credential table. The
// store implementation guarantees all-or-nothing semantics.
func Restore(ctx context.Context, store Store, backup string) error {
	return store.Restaurar(ctx, backup)
}
