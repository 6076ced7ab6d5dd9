package usecase

import (
	"context"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

// GateUseCase es el interruptor global de votación, respaldado por la fila
// de setting "voting_open". La ausencia de la fila se trata como cerrado
// (default seguro). La restricción a admins la aplica el middleware HTTP.
type GateUseCase struct {
	settings repository.SettingRepository
}

// NewGateUseCase construye el caso de uso del interruptor.
func NewGateUseCase(settings repository.SettingRepository) *GateUseCase {
	return &GateUseCase{settings: settings}
}

// IsOpen indica si la votación está abierta.
func (uc *GateUseCase) IsOpen(ctx context.Context) (bool, error) {
	row, err := uc.settings.Get(ctx, entity.SettingVotingOpen)
	if err != nil {
		return false, err
	}
	return row.Bool(), nil
}

// SetOpen abre o cierra la votación. Upsert idempotente: escribir el mismo
// valor dos veces no cambia nada observable.
func (uc *GateUseCase) SetOpen(ctx context.Context, open bool) error {
	value := "false"
	if open {
		value = "true"
	}
	return uc.settings.Upsert(ctx, entity.SettingVotingOpen, value)
}
