package repository

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

// VoterRepository define el puerto de persistencia del padrón (DIP).
// Las búsquedas devuelven (nil, nil) cuando el votante no existe.
type VoterRepository interface {
	// Create persiste un votante nuevo. Devuelve domain.ErrVoterExists si ya hay
	// un registro con el mismo (school_id canónico, level).
	Create(ctx context.Context, voter *entity.Voter) error
	GetByID(ctx context.Context, id string) (*entity.Voter, error)
	GetBySchoolIDAndLevel(ctx context.Context, canonicalSchoolID, level string) (*entity.Voter, error)
	// ListByLevel lista el padrón de un nivel (level vacío = todos), más reciente primero.
	ListByLevel(ctx context.Context, level string) ([]*entity.Voter, error)
	// ListCanonicalSchoolIDs devuelve los school ids canónicos ya registrados en
	// un nivel; la importación lo usa como precarga para chequeos O(1) por fila.
	ListCanonicalSchoolIDs(ctx context.Context, level string) ([]string, error)
	Update(ctx context.Context, voter *entity.Voter) error
	Delete(ctx context.Context, id string) error
}
