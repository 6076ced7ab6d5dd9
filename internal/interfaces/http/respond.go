package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
)

// failDomain mapea un error de dominio al status y cuerpo HTTP correspondiente.
// Los handlers con respuestas especiales (p.ej. voto duplicado con el asiento
// existente) interceptan antes de llegar aquí.
func failDomain(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrMissingPassword),
		errors.Is(err, domain.ErrMalformedCandidate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})

	case errors.Is(err, domain.ErrSessionInvalid):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_INVALID", Message: err.Error()})

	case errors.Is(err, domain.ErrVotingClosed),
		errors.Is(err, domain.ErrCrossLevelVote),
		errors.Is(err, domain.ErrEligibilityUndetermined),
		errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})

	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCandidateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})

	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrDuplicateVote),
		errors.Is(err, domain.ErrVoterExists),
		errors.Is(err, domain.ErrAdminExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
