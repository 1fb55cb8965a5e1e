package service

import (
	"context"
	"regexp"
	"testing"

	"nutriapp/internal/dto"
	"nutriapp/internal/model"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory repository stub ─────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users  map[string]*model.Usuario // keyed by correo
	nextID int

	// registrarResultado overrides the store's success flag when != 0
	registrarResultado int
}

func newStubRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) InfoUsuario(_ context.Context, correo string) (*model.Usuario, error) {
	u, ok := r.users[correo]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) CorreoExiste(_ context.Context, correo string) (bool, error) {
	_, ok := r.users[correo]
	return ok, nil
}

func (r *stubUsuarioRepo) RegistrarUsuario(_ context.Context, identificador, correo, hash, nombreCompleto, rol, genero string) (int, error) {
	if r.registrarResultado != 0 {
		return r.registrarResultado, nil
	}
	if _, ok := r.users[correo]; ok {
		return 0, nil
	}
	r.users[correo] = &model.Usuario{
		IDUsuario: r.nextID, Identificador: identificador, Correo: correo,
		Contrasena: hash, NombreCompleto: nombreCompleto, Rol: rol,
		Genero: genero, Activo: true,
	}
	r.nextID++
	return 1, nil
}

func (r *stubUsuarioRepo) CredencialPorID(_ context.Context, id int) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.IDUsuario == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) ActualizarContrasena(_ context.Context, hash string, id int) (int64, error) {
	for _, u := range r.users {
		if u.IDUsuario == id {
			u.Contrasena = hash
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	users := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUsuarioRepo) Modificar(_ context.Context, id int, nombreCompleto, genero string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.IDUsuario == id {
			u.NombreCompleto = nombreCompleto
			u.Genero = genero
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, correo, contrasena, rol string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcryptCost)
	assert.NoError(t, err)
	u := &model.Usuario{
		IDUsuario: repo.nextID, Identificador: "AABBCCDDEEFF", Correo: correo,
		Contrasena: string(hash), NombreCompleto: "Test User", Rol: rol,
		Genero: "Otro", Activo: true,
	}
	repo.nextID++
	repo.users[correo] = u
	return u
}

func newAuthService(repo *stubUsuarioRepo) AuthService {
	return NewAuthService(repo, NewTokenService(testSecret))
}

// ── Tests: Login ──────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newStubRepo()
	seedUsuario(t, repo, "a@b.com", "longenough1", "USUARIO")
	svc := newAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Correo: "a@b.com", Contrasena: "longenough1"})
	assert.NoError(t, err)
	assert.True(t, resp.Verification)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "USUARIO", resp.Rol)
	assert.Equal(t, "a@b.com", resp.Correo)
	assert.Equal(t, "Test User", resp.NombreCompleto)
}

func TestLogin_WrongPassword_And_UnknownEmail_Indistinguishable(t *testing.T) {
	repo := newStubRepo()
	seedUsuario(t, repo, "a@b.com", "correcta123", "USUARIO")
	svc := newAuthService(repo)

	_, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{Correo: "a@b.com", Contrasena: "wrong"})
	_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{Correo: "noexiste@b.com", Contrasena: "wrong"})

	assert.ErrorIs(t, errWrongPass, ErrCredencialesInvalidas)
	assert.ErrorIs(t, errUnknown, ErrCredencialesInvalidas)
	// Same error value → same status code and body at the boundary.
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestLogin_NeverReturnsHash(t *testing.T) {
	repo := newStubRepo()
	u := seedUsuario(t, repo, "a@b.com", "longenough1", "USUARIO")
	svc := newAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Correo: "a@b.com", Contrasena: "longenough1"})
	assert.NoError(t, err)
	assert.NotContains(t, resp.Token, u.Contrasena)
}

// ── Tests: Registro ───────────────────────────────────────────────────────────

var identificadorRe = regexp.MustCompile(`^[0-9A-F]{12}$`)

func TestRegistrar_Success(t *testing.T) {
	repo := newStubRepo()
	svc := newAuthService(repo)

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Correo: "a@b.com", Contrasena: "longenough1",
		NombreCompleto: "A B", Genero: "Masculino",
	})
	assert.NoError(t, err)
	assert.Regexp(t, identificadorRe, resp.Identificador)
	assert.NotEmpty(t, resp.Token)

	// The stored credential is hashed, never plaintext.
	u := repo.users["a@b.com"]
	assert.GreaterOrEqual(t, len(u.Contrasena), 60)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte("longenough1")))
	// Self-registration can never create elevated roles.
	assert.Equal(t, RolUsuario, u.Rol)
}

func TestRegistrar_DuplicateEmail_Conflict(t *testing.T) {
	repo := newStubRepo()
	svc := newAuthService(repo)

	req := dto.RegistroRequest{
		Correo: "a@b.com", Contrasena: "longenough1",
		NombreCompleto: "A B", Genero: "Masculino",
	}
	_, err := svc.Registrar(context.Background(), req)
	assert.NoError(t, err)

	// Repeated registrations always conflict.
	for i := 0; i < 3; i++ {
		_, err = svc.Registrar(context.Background(), req)
		assert.ErrorIs(t, err, ErrCorreoRegistrado)
	}
}

func TestRegistrar_InvalidEmail(t *testing.T) {
	svc := newAuthService(newStubRepo())

	for _, correo := range []string{"sinarroba", "a@b", "con espacio@b.com", "a@b .com"} {
		_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
			Correo: correo, Contrasena: "longenough1",
			NombreCompleto: "A B", Genero: "Otro",
		})
		assert.ErrorIs(t, err, ErrCorreoInvalido, "correo: %s", correo)
	}
}

func TestRegistrar_WeakPassword(t *testing.T) {
	svc := newAuthService(newStubRepo())

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Correo: "a@b.com", Contrasena: "corta12",
		NombreCompleto: "A B", Genero: "Otro",
	})
	assert.ErrorIs(t, err, ErrContrasenaDebil)
}

func TestRegistrar_StoreFailure_Generic(t *testing.T) {
	repo := newStubRepo()
	repo.registrarResultado = -1
	svc := newAuthService(repo)

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Correo: "a@b.com", Contrasena: "longenough1",
		NombreCompleto: "A B", Genero: "Otro",
	})
	assert.ErrorIs(t, err, ErrRegistroFallido)
}

// ── Tests: CambiarContrasena ──────────────────────────────────────────────────

func TestCambiarContrasena_Success(t *testing.T) {
	repo := newStubRepo()
	u := seedUsuario(t, repo, "a@b.com", "original123", "USUARIO")
	svc := newAuthService(repo)

	err := svc.CambiarContrasena(context.Background(), dto.CambiarContrasenaRequest{
		UsuarioID: u.IDUsuario, ContrasenaActual: "original123", ContrasenaNueva: "nueva12345",
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte("nueva12345")))
}

func TestCambiarContrasena_WrongCurrent(t *testing.T) {
	repo := newStubRepo()
	u := seedUsuario(t, repo, "a@b.com", "original123", "USUARIO")
	svc := newAuthService(repo)

	err := svc.CambiarContrasena(context.Background(), dto.CambiarContrasenaRequest{
		UsuarioID: u.IDUsuario, ContrasenaActual: "equivocada1", ContrasenaNueva: "nueva12345",
	})
	assert.ErrorIs(t, err, ErrContrasenaActual)
	// Stored hash unchanged
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte("original123")))
}

func TestCambiarContrasena_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubRepo())

	err := svc.CambiarContrasena(context.Background(), dto.CambiarContrasenaRequest{
		UsuarioID: 999, ContrasenaActual: "loquesea", ContrasenaNueva: "nueva12345",
	})
	assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
}

func TestCambiarContrasena_WeakNew(t *testing.T) {
	repo := newStubRepo()
	u := seedUsuario(t, repo, "a@b.com", "original123", "USUARIO")
	svc := newAuthService(repo)

	err := svc.CambiarContrasena(context.Background(), dto.CambiarContrasenaRequest{
		UsuarioID: u.IDUsuario, ContrasenaActual: "original123", ContrasenaNueva: "corta12",
	})
	assert.ErrorIs(t, err, ErrContrasenaDebil)
}

// ── Tests: hashing properties ─────────────────────────────────────────────────

func TestBcrypt_VerifyRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("longenough1"), bcryptCost)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(hash), 60)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("longenough1")))
	// Mismatch is a plain failure, not a panic or internal error.
	err = bcrypt.CompareHashAndPassword(hash, []byte("wrongpassword"))
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestGenerarIdentificador_ShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := generarIdentificador()
		assert.NoError(t, err)
		assert.Regexp(t, identificadorRe, id)
		assert.False(t, seen[id], "identificador repetido: %s", id)
		seen[id] = true
	}
}
