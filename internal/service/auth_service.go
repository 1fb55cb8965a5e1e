package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"

	"nutriapp/internal/dto"
	"nutriapp/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost balances offline brute-force resistance against interactive
// login latency (tens of milliseconds).
const bcryptCost = 10

// RolUsuario is the only role self-registration may create.
const RolUsuario = "USUARIO"

// Classified auth failures. The handler maps each to its HTTP status; any
// other error is an internal failure answered with a generic 500.
var (
	// ErrCredencialesInvalidas covers unknown email AND wrong password:
	// both must produce an identical response to prevent user enumeration.
	ErrCredencialesInvalidas = errors.New("Credenciales incorrectas")
	ErrCorreoInvalido        = errors.New("Correo electronico no valido")
	ErrContrasenaDebil       = errors.New("La contrasena debe tener al menos 8 caracteres")
	ErrCorreoRegistrado      = errors.New("El correo electronico ya esta registrado")
	ErrUsuarioNoEncontrado   = errors.New("Usuario no encontrado")
	ErrContrasenaActual      = errors.New("La contrasena actual es incorrecta")
	ErrRegistroFallido       = errors.New("No se pudo registrar el usuario. El correo ya existe o hubo un error en el servidor.")
)

// correoRegex accepts local@domain.tld with no whitespace.
var correoRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.RegistroResponse, error)
	CambiarContrasena(ctx context.Context, req dto.CambiarContrasenaRequest) error
}

type authService struct {
	repo   repository.UsuarioRepository
	tokens *TokenService
}

func NewAuthService(repo repository.UsuarioRepository, tokens *TokenService) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.InfoUsuario(ctx, req.Correo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(req.Contrasena)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.tokens.IssueLogin(req.Correo, user.IDUsuario, user.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Verification:   true,
		Mensaje:        "Login correcto",
		Token:          token,
		ID:             user.IDUsuario,
		Rol:            user.Rol,
		NombreCompleto: user.NombreCompleto,
		Correo:         user.Correo,
		Genero:         user.Genero,
	}, nil
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.RegistroResponse, error) {
	if !correoRegex.MatchString(req.Correo) {
		return nil, ErrCorreoInvalido
	}
	if len(req.Contrasena) < 8 {
		return nil, ErrContrasenaDebil
	}

	existe, err := s.repo.CorreoExiste(ctx, req.Correo)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrCorreoRegistrado
	}

	identificador, err := generarIdentificador()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcryptCost)
	if err != nil {
		return nil, err
	}

	resultado, err := s.repo.RegistrarUsuario(ctx, identificador, req.Correo, string(hash),
		req.NombreCompleto, RolUsuario, req.Genero)
	if err != nil {
		return nil, err
	}
	if resultado != 1 {
		// The store does not distinguish a concurrent duplicate from any
		// other insert failure at this layer.
		return nil, ErrRegistroFallido
	}

	token, err := s.tokens.IssueRegistro(req.Correo, identificador)
	if err != nil {
		return nil, err
	}

	return &dto.RegistroResponse{
		Message:       "Usuario registrado correctamente",
		Identificador: identificador,
		Token:         token,
	}, nil
}

func (s *authService) CambiarContrasena(ctx context.Context, req dto.CambiarContrasenaRequest) error {
	if len(req.ContrasenaNueva) < 8 {
		return ErrContrasenaDebil
	}

	user, err := s.repo.CredencialPorID(ctx, req.UsuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNoEncontrado
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(req.ContrasenaActual)); err != nil {
		return ErrContrasenaActual
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.ContrasenaNueva), bcryptCost)
	if err != nil {
		return err
	}

	// Existing tokens stay valid until natural expiration — sessions are
	// stateless and there is no revocation list.
	_, err = s.repo.ActualizarContrasena(ctx, string(hash), user.IDUsuario)
	return err
}

// generarIdentificador builds the 12-char uppercase hex identifier assigned
// once at creation, from a cryptographically random 6-byte source.
func generarIdentificador() (string, error) {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b[:])), nil
}
