package repository

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

// SettingRepository define el puerto de persistencia de settings clave/valor.
// Se pasa como dependencia explícita (no estado global) para poder sustituirlo en tests.
type SettingRepository interface {
	// Get devuelve (nil, nil) si la clave no existe.
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Upsert crea o reemplaza el valor; escribir el mismo valor dos veces es un no-op observable.
	Upsert(ctx context.Context, key, value string) error
}
