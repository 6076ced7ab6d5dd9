package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/domain"
)

// VoteHandler maneja emisión y consulta de votos del votante autenticado.
type VoteHandler struct {
	voting *usecase.VotingUseCase
	gate   *usecase.GateUseCase
}

// NewVoteHandler construye el handler de votos.
func NewVoteHandler(voting *usecase.VotingUseCase, gate *usecase.GateUseCase) *VoteHandler {
	return &VoteHandler{voting: voting, gate: gate}
}

// Cast godoc
// @Summary      Emitir un voto
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CastVoteRequest  true  "candidate_id"
// @Success      201   {object}  dto.VoteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.DuplicateVoteResponse
// @Security     BearerAuth
// @Router       /api/votes [post]
func (h *VoteHandler) Cast(c *fiber.Ctx) error {
	var in dto.CastVoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CandidateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "candidate_id es requerido"})
	}

	vote, err := h.voting.CastVote(c.Context(), GetSubjectID(c), in.CandidateID)
	if err != nil {
		// El conflicto de duplicado lleva el asiento existente en el cuerpo.
		var dup *usecase.DuplicateVoteError
		if errors.As(err, &dup) {
			return c.Status(fiber.StatusConflict).JSON(dto.DuplicateVoteResponse{
				Code:     "DUPLICATE_VOTE",
				Message:  domain.ErrDuplicateVote.Error(),
				Existing: usecase.VoteToResponse(dup.Existing),
			})
		}
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vote)
}

// MyVotes godoc
// @Summary      Votos emitidos por el votante autenticado
// @Tags         votes
// @Produce      json
// @Success      200  {array}  dto.VoteResponse
// @Security     BearerAuth
// @Router       /api/votes/me [get]
func (h *VoteHandler) MyVotes(c *fiber.Ctx) error {
	votes, err := h.voting.ListVotesForVoter(c.Context(), GetSubjectID(c))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(votes)
}

// GateStatus godoc
// @Summary      Estado del interruptor de votación
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.GateStatusResponse
// @Router       /api/settings/voting [get]
func (h *VoteHandler) GateStatus(c *fiber.Ctx) error {
	open, err := h.gate.IsOpen(c.Context())
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.GateStatusResponse{Open: open})
}

// SetGate godoc
// @Summary      Abrir o cerrar la votación
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GateStatusResponse  true  "open"
// @Success      200   {object}  dto.GateStatusResponse
// @Security     BearerAuth
// @Router       /api/settings/voting [put]
func (h *VoteHandler) SetGate(c *fiber.Ctx) error {
	var in dto.GateStatusResponse
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.gate.SetOpen(c.Context(), in.Open); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.GateStatusResponse{Open: in.Open})
}
