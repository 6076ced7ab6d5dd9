package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/auth"
	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/pkg/jwt"
)

// Locals keys para identidad del token en Fiber.
const (
	LocalSubjectID = "subject_id"
	LocalRole      = "role"
	LocalLevel     = "level"
)

// AuthMiddleware valida el Bearer Token JWT y extrae sujeto, rol y nivel a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		subjectID, role, level, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubjectID, subjectID)
		c.Locals(LocalRole, role)
		c.Locals(LocalLevel, level)
		return c.Next()
	}
}

// RequireAdmin exige rol admin (después de AuthMiddleware).
func RequireAdmin() fiber.Handler {
	return requireRole(auth.RoleAdmin)
}

// RequireVoter exige rol voter (después de AuthMiddleware).
func RequireVoter() fiber.Handler {
	return requireRole(auth.RoleVoter)
}

func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
		}
		return c.Next()
	}
}

// GetSubjectID devuelve el sujeto del token (después del middleware de auth).
func GetSubjectID(c *fiber.Ctx) string {
	v := c.Locals(LocalSubjectID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del token (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetLevel devuelve el nivel del token de votante (vacío para admin).
func GetLevel(c *fiber.Ctx) string {
	v := c.Locals(LocalLevel)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
