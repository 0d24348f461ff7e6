package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials credenciales configuradas para el acceso a la API.
// El password se compara contra su hash bcrypt, nunca en claro.
type Credentials struct {
	Username     string
	PasswordHash string
}

// AuthUseCase emite y verifica tokens de acceso a la API. No hay tabla de
// usuarios: las credenciales vienen de la configuración del despliegue.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica username y password (bcrypt) y emite un JWT con ámbito api.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.creds.Username == "" || uc.creds.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Username != uc.creds.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, jwt.AccessAPI, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: fmt.Sprintf("%dm", uc.jwtCfg.ExpMinutes),
	}, nil
}

// Verify valida un token y devuelve sus claims. Tokens de otro ámbito se rechazan.
func (uc *AuthUseCase) Verify(tokenString string) (*dto.TokenInfoResponse, error) {
	username, access, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if access != jwt.AccessAPI {
		return nil, domain.ErrUnauthorized
	}
	return &dto.TokenInfoResponse{Username: username, Access: access}, nil
}
