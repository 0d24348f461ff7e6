package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jfcardenas/inventra/internal/application/auth"
	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/domain"
	pkgjwt "github.com/jfcardenas/inventra/pkg/jwt"
)

const (
	testPassword = "super-secreta"
	testSecret   = "jwt-secret-de-test"
)

func newTestAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(
		auth.Credentials{Username: "admin", PasswordHash: string(hash)},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 30, Issuer: "inventra-test"},
	)
}

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	uc := newTestAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: testPassword})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "30m", resp.ExpiresIn)

	username, access, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, pkgjwt.AccessAPI, access, "el token de login lleva ámbito api")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newTestAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsernameIncorrecto(t *testing.T) {
	uc := newTestAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "root", Password: testPassword})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinCredencialesConfiguradas(t *testing.T) {
	uc := auth.NewAuthUseCase(auth.Credentials{}, auth.JWTConfig{Secret: testSecret})

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: testPassword})

	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"sin credenciales configuradas nadie puede entrar")
}

func TestVerify_TokenValido(t *testing.T) {
	uc := newTestAuthUC(t)

	login, err := uc.Login(dto.LoginRequest{Username: "admin", Password: testPassword})
	require.NoError(t, err)

	info, err := uc.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
}

func TestVerify_TokenDeOtroAmbitoRechazado(t *testing.T) {
	uc := newTestAuthUC(t)

	tok, err := pkgjwt.Generate(testSecret, "admin", "refresh", "inventra-test", 30)
	require.NoError(t, err)

	_, err = uc.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
