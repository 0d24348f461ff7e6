package dto

// LoginRequest credenciales de acceso a la API.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"` // ej. "30m"
}

// TokenInfoResponse claims del token verificado.
type TokenInfoResponse struct {
	Username string `json:"username"`
	Access   string `json:"access"`
}
