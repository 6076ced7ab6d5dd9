package repository

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia de administradores.
type AdminRepository interface {
	// Create persiste un admin nuevo. Devuelve domain.ErrAdminExists si el
	// username ya está tomado (comparación case-insensitive).
	Create(ctx context.Context, admin *entity.Admin) error
	// GetByUsername busca case-insensitive; (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
}
