package repository

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

// VoteRepository define el puerto de persistencia del libro de votos.
//
// Insert es la primitiva atómica del sistema: el índice único
// (voter_id, position, level) en storage es el árbitro real de duplicados.
// La implementación debe traducir la violación de unicidad a
// domain.ErrDuplicateVote en vez de propagar el error crudo del driver.
type VoteRepository interface {
	Insert(ctx context.Context, vote *entity.Vote) error
	FindByVoterPositionLevel(ctx context.Context, voterID, position, level string) (*entity.Vote, error)
	// ListByVoter devuelve los votos de un votante ordenados por cargo.
	ListByVoter(ctx context.Context, voterID string) ([]*entity.Vote, error)
}
