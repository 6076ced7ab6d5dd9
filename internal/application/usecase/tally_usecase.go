package usecase

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
)

// TallyUseCase produce el conteo agregado por candidato. Solo lectura: nunca
// muta el libro de votos y es seguro llamarlo en paralelo con CastVote (una
// lectura puede quedar un voto detrás de un commit en vuelo; el conteo es
// informativo, el libro de votos es el registro de verdad).
type TallyUseCase struct {
	tallyRepo repository.TallyRepository
}

// NewTallyUseCase construye el agregador.
func NewTallyUseCase(tallyRepo repository.TallyRepository) *TallyUseCase {
	return &TallyUseCase{tallyRepo: tallyRepo}
}

// Tally devuelve una fila por candidato (incluidos los de cero votos),
// ordenado por nivel, cargo, votos descendente y apellido. Los filtros son
// opcionales; un filtro de nivel no canonicalizable se rechaza.
func (uc *TallyUseCase) Tally(ctx context.Context, levelFilter, positionFilter string) ([]dto.TallyRowResponse, error) {
	level := ""
	if levelFilter != "" {
		resolved, ok := taxonomy.ResolveLevel(levelFilter)
		if !ok {
			return nil, domain.ErrInvalidLevel
		}
		level = resolved
	}

	rows, err := uc.tallyRepo.Tally(ctx, level, positionFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TallyRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TallyRowResponse{
			CandidateID: r.CandidateID,
			FirstName:   r.FirstName,
			MiddleName:  r.MiddleName,
			LastName:    r.LastName,
			PartyList:   r.PartyList,
			Position:    r.Position,
			Level:       r.Level,
			PhotoPath:   r.PhotoPath,
			Votes:       r.Votes,
			Share:       r.Share,
		})
	}
	return out, nil
}
