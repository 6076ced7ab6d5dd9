package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

var _ repository.VoteRepository = (*VoteRepo)(nil)

// VoteRepo implementación del puerto VoteRepository sobre PostgreSQL.
type VoteRepo struct {
	q Querier
}

func NewVoteRepository(q Querier) *VoteRepo {
	return &VoteRepo{q: q}
}

// Insert registra un voto. El índice único (voter_id, position, level) es el
// árbitro final bajo concurrencia: la violación se traduce a
// domain.ErrDuplicateVote en lugar de propagar el error crudo del driver.
func (r *VoteRepo) Insert(ctx context.Context, vote *entity.Vote) error {
	query := `
		INSERT INTO votes (voter_id, candidate_id, position, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		vote.VoterID, vote.CandidateID, vote.Position, vote.Level,
		vote.CreatedAt, vote.UpdatedAt,
	).Scan(&vote.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateVote
		}
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// FindByVoterPositionLevel busca el voto existente para la terna; (nil, nil) si no hay.
func (r *VoteRepo) FindByVoterPositionLevel(ctx context.Context, voterID, position, level string) (*entity.Vote, error) {
	query := `
		SELECT id, voter_id, candidate_id, position, level, created_at, updated_at
		FROM votes
		WHERE voter_id = $1 AND position = $2 AND level = $3`
	var v entity.Vote
	err := r.q.QueryRow(ctx, query, voterID, position, level).Scan(
		&v.ID, &v.VoterID, &v.CandidateID, &v.Position, &v.Level, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find vote: %w", err)
	}
	return &v, nil
}

// ListByVoter lista los votos emitidos por un votante, ordenados por cargo.
func (r *VoteRepo) ListByVoter(ctx context.Context, voterID string) ([]*entity.Vote, error) {
	query := `
		SELECT id, voter_id, candidate_id, position, level, created_at, updated_at
		FROM votes
		WHERE voter_id = $1
		ORDER BY position ASC`
	rows, err := r.q.Query(ctx, query, voterID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vote
	for rows.Next() {
		var v entity.Vote
		if err := rows.Scan(
			&v.ID, &v.VoterID, &v.CandidateID, &v.Position, &v.Level, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
