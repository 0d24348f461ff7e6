package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jfcardenas/inventra/internal/application/auth"
	"github.com/jfcardenas/inventra/internal/application/dto"
)

// AuthHandler maneja login y verificación de tokens.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Obtener token de acceso a la API
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar token vigente
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.TokenInfoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "formato: Bearer <token>"})
	}
	out, err := h.uc.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
