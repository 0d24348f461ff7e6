package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessAPI ámbito de acceso que otorgan los tokens emitidos por /auth/login.
const AccessAPI = "api"

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Access permite distinguir ámbitos de acceso sin consultar almacenamiento.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Access   string `json:"access"`
}

// Generate firma un token HS256 con username y ámbito de acceso.
// expMinutes puede ser negativo en tests para generar tokens expirados.
func Generate(secret, username, access, issuer string, expMinutes int) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Username: username,
		Access:   access,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("firmar token: %w", err)
	}
	return signed, nil
}

// Parse valida firma y expiración y devuelve username y access.
func Parse(secret, tokenString string) (username, access string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("token inválido")
	}
	return claims.Username, claims.Access, nil
}
