package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/auth"
	"github.com/jhoicas/eleccion-api/internal/application/dto"
)

// AuthHandler maneja registro de administradores y ambos logins.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	admin, err := h.uc.RegisterAdmin(c.Context(), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(admin)
}

// Login godoc
// @Summary      Login de administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.LoginAdmin(c.Context(), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// VoterLogin godoc
// @Summary      Login de votante
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoterLoginRequest  true  "school_id, level, password"
// @Success      200   {object}  dto.VoterLoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/voter-login [post]
func (h *AuthHandler) VoterLogin(c *fiber.Ctx) error {
	var in dto.VoterLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SchoolID == "" || in.Level == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "school_id, level y password son requeridos"})
	}
	out, err := h.uc.LoginVoter(c.Context(), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
