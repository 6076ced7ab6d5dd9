package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación del puerto SettingRepository sobre PostgreSQL.
type SettingRepo struct {
	q Querier
}

func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get obtiene un setting por clave; (nil, nil) si no existe.
func (r *SettingRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	query := `SELECT key, value, updated_at FROM settings WHERE key = $1`
	var s entity.Setting
	err := r.q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Upsert crea o actualiza un setting por clave.
func (r *SettingRepo) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := r.q.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}
