package repository

import (
	"context"

	"nutriapp/internal/model"

	"gorm.io/gorm"
)

// UsuarioRepository is the credential store adapter. Business logic lives in
// the fu_* PostgreSQL functions; this layer only binds parameters and scans
// rows.
type UsuarioRepository interface {
	InfoUsuario(ctx context.Context, correo string) (*model.Usuario, error)
	CorreoExiste(ctx context.Context, correo string) (bool, error)
	RegistrarUsuario(ctx context.Context, identificador, correo, hash, nombreCompleto, rol, genero string) (int, error)
	CredencialPorID(ctx context.Context, id int) (*model.Usuario, error)
	ActualizarContrasena(ctx context.Context, hash string, id int) (int64, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
	Modificar(ctx context.Context, id int, nombreCompleto, genero string) (*model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

// InfoUsuario resolves a credential record by email via fu_info_usuario.
// Returns gorm.ErrRecordNotFound when the email is unknown.
func (r *usuarioRepo) InfoUsuario(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	res := r.db.WithContext(ctx).Raw("SELECT * FROM fu_info_usuario(?)", correo).Scan(&u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *usuarioRepo) CorreoExiste(ctx context.Context, correo string) (bool, error) {
	var existing []string
	res := r.db.WithContext(ctx).Raw("SELECT correo FROM usuarios WHERE correo = ?", correo).Scan(&existing)
	if res.Error != nil {
		return false, res.Error
	}
	return len(existing) > 0, nil
}

// RegistrarUsuario calls fu_registrar_usuario. The function returns 1 when the
// row was created; any other value means the email already exists or the
// insert failed inside the database.
func (r *usuarioRepo) RegistrarUsuario(ctx context.Context, identificador, correo, hash, nombreCompleto, rol, genero string) (int, error) {
	var resultado int
	err := r.db.WithContext(ctx).
		Raw("SELECT fu_registrar_usuario(?, ?, ?, ?, ?, ?) AS resultado",
			identificador, correo, hash, nombreCompleto, rol, genero).
		Scan(&resultado).Error
	return resultado, err
}

func (r *usuarioRepo) CredencialPorID(ctx context.Context, id int) (*model.Usuario, error) {
	var u model.Usuario
	res := r.db.WithContext(ctx).
		Raw("SELECT id_usuario, contrasena FROM usuarios WHERE id_usuario = ?", id).
		Scan(&u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *usuarioRepo) ActualizarContrasena(ctx context.Context, hash string, id int) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("UPDATE usuarios SET contrasena = ? WHERE id_usuario = ?", hash, id)
	return res.RowsAffected, res.Error
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).Raw("SELECT * FROM fu_listar_usuarios()").Scan(&usuarios).Error
	return usuarios, err
}

// Modificar updates name and gender, returning the updated row, or
// gorm.ErrRecordNotFound when the user does not exist.
func (r *usuarioRepo) Modificar(ctx context.Context, id int, nombreCompleto, genero string) (*model.Usuario, error) {
	var u model.Usuario
	res := r.db.WithContext(ctx).
		Raw(`UPDATE usuarios SET nombre_completo = ?, genero = ?
		     WHERE id_usuario = ?
		     RETURNING id_usuario, nombre_completo, genero`,
			nombreCompleto, genero, id).
		Scan(&u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}
