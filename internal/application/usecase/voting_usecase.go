package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
)

// DuplicateVoteError envuelve ErrDuplicateVote con el voto ya registrado,
// para que el caller pueda mostrarlo (transparencia ante el votante).
type DuplicateVoteError struct {
	Existing *entity.Vote
}

func (e *DuplicateVoteError) Error() string { return domain.ErrDuplicateVote.Error() }

// Unwrap permite errors.Is(err, domain.ErrDuplicateVote).
func (e *DuplicateVoteError) Unwrap() error { return domain.ErrDuplicateVote }

// VotingUseCase es el libro de votos: acepta o rechaza una papeleta.
//
// El índice único (voter_id, position, level) en storage es el árbitro real
// contra duplicados concurrentes. El chequeo previo de existencia solo sirve
// para devolver el voto en conflicto; dos requests simultáneos pueden pasar
// ese chequeo a la vez y aun así solo uno comitea el INSERT.
type VotingUseCase struct {
	gate      *GateUseCase
	voterRepo repository.VoterRepository
	candRepo  repository.CandidateRepository
	voteRepo  repository.VoteRepository
}

// NewVotingUseCase construye el caso de uso de votación.
func NewVotingUseCase(gate *GateUseCase, voterRepo repository.VoterRepository, candRepo repository.CandidateRepository, voteRepo repository.VoteRepository) *VotingUseCase {
	return &VotingUseCase{gate: gate, voterRepo: voterRepo, candRepo: candRepo, voteRepo: voteRepo}
}

// CastVote registra exactamente un voto para (votante, cargo del candidato).
// Las precondiciones se evalúan en orden fijo y la primera falla gana:
// gate cerrado, votante inexistente, nivel indeterminable, candidato
// inexistente, nivel cruzado, candidato sin cargo, voto duplicado.
func (uc *VotingUseCase) CastVote(ctx context.Context, voterID, candidateID string) (*dto.VoteResponse, error) {
	open, err := uc.gate.IsOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, domain.ErrVotingClosed
	}

	// Token viejo: la identidad autenticada puede ya no resolver a una fila del padrón.
	voter, err := uc.voterRepo.GetByID(ctx, voterID)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrSessionInvalid
	}

	voterLevel, ok := taxonomy.ResolveLevel(voter.Level)
	if !ok {
		return nil, domain.ErrEligibilityUndetermined
	}

	cand, err := uc.candRepo.GetByID(ctx, strings.TrimSpace(candidateID))
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrCandidateNotFound
	}

	candLevel, ok := taxonomy.ResolveLevel(cand.Level)
	if !ok || candLevel != voterLevel {
		return nil, domain.ErrCrossLevelVote
	}

	position := strings.TrimSpace(cand.Position)
	if position == "" {
		return nil, domain.ErrMalformedCandidate
	}

	existing, err := uc.voteRepo.FindByVoterPositionLevel(ctx, voter.ID, position, candLevel)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateVoteError{Existing: existing}
	}

	now := time.Now()
	vote := &entity.Vote{
		VoterID:     voter.ID,
		CandidateID: cand.ID,
		// Position y Level se copian del candidato en este instante, no se re-derivan.
		Position:  position,
		Level:     candLevel,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.voteRepo.Insert(ctx, vote); err != nil {
		// Perdedor de la carrera: la violación de unicidad es la señal
		// autoritativa de "ya votó", no un error de storage a propagar.
		if errors.Is(err, domain.ErrDuplicateVote) {
			conflicting, findErr := uc.voteRepo.FindByVoterPositionLevel(ctx, voter.ID, position, candLevel)
			if findErr == nil && conflicting != nil {
				return nil, &DuplicateVoteError{Existing: conflicting}
			}
			return nil, &DuplicateVoteError{}
		}
		return nil, err
	}

	return VoteToResponse(vote), nil
}

// ListVotesForVoter devuelve los votos del votante ordenados por cargo. Solo lectura.
func (uc *VotingUseCase) ListVotesForVoter(ctx context.Context, voterID string) ([]dto.VoteResponse, error) {
	votes, err := uc.voteRepo.ListByVoter(ctx, voterID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, *VoteToResponse(v))
	}
	return out, nil
}

// VoteToResponse mapea la entidad al DTO de salida.
func VoteToResponse(v *entity.Vote) *dto.VoteResponse {
	if v == nil {
		return nil
	}
	return &dto.VoteResponse{
		ID:          v.ID,
		VoterID:     v.VoterID,
		CandidateID: v.CandidateID,
		Position:    v.Position,
		Level:       v.Level,
		CreatedAt:   v.CreatedAt,
	}
}
