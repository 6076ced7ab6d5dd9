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

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un administrador. El índice único sobre lower(username)
// traduce el duplicado a domain.ErrAdminExists.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		admin.Username, admin.PasswordHash, admin.CreatedAt, admin.UpdatedAt,
	).Scan(&admin.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByUsername busca un administrador por username (case-insensitive); (nil, nil) si no existe.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admins
		WHERE LOWER(username) = LOWER($1)`
	var a entity.Admin
	err := r.q.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}
