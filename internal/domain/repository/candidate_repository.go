package repository

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

// CandidateRepository define el puerto de persistencia de candidatos.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	GetByID(ctx context.Context, id string) (*entity.Candidate, error)
	// List lista candidatos (level vacío = todos), más reciente primero.
	List(ctx context.Context, level string) ([]*entity.Candidate, error)
	Update(ctx context.Context, candidate *entity.Candidate) error
	Delete(ctx context.Context, id string) error
}
