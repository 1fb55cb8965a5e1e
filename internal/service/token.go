package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute lifetime of every issued token.
const TokenTTL = 30 * 24 * time.Hour

// LoginClaims is the claim set of tokens issued at login.
type LoginClaims struct {
	Correo    string `json:"p_correo"`
	IDUsuario int    `json:"id_usuario"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}

// RegistroClaims is the claim set of tokens issued at registration. It is a
// deliberately different shape from LoginClaims: a freshly registered user is
// identified by email + generated identifier, not by numeric id and role.
type RegistroClaims struct {
	Correo        string `json:"p_correo"`
	Identificador string `json:"identificador"`
	jwt.RegisteredClaims
}

// TokenClaims is the union shape decoded during verification. Fields absent
// from the issuing flow are simply zero.
type TokenClaims struct {
	Correo        string `json:"p_correo"`
	IDUsuario     int    `json:"id_usuario"`
	Rol           string `json:"rol"`
	Identificador string `json:"identificador"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens. The secret is injected
// at construction so tests can use a fixed one; config.Load guarantees it is
// non-empty in production.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) IssueLogin(correo string, idUsuario int, rol string) (string, error) {
	claims := LoginClaims{
		Correo:    correo,
		IDUsuario: idUsuario,
		Rol:       rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) IssueRegistro(correo, identificador string) (string, error) {
	claims := RegistroClaims{
		Correo:        correo,
		Identificador: identificador,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token. The returned error wraps the jwt/v5
// sentinels (jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid, ...) so the
// caller can log the exact failure kind; at the HTTP boundary they all map to
// the same 403 rejection.
func (s *TokenService) Verify(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token invalido")
	}
	return claims, nil
}
