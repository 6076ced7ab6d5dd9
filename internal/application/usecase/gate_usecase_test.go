package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

func TestGate_SinFila_EsCerrado(t *testing.T) {
	gate := usecase.NewGateUseCase(newFakeSettingRepo())

	open, err := gate.IsOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open, "sin fila voting_open el sistema arranca cerrado")
}

func TestGate_AbrirYCerrar(t *testing.T) {
	settings := newFakeSettingRepo()
	gate := usecase.NewGateUseCase(settings)
	ctx := context.Background()

	require.NoError(t, gate.SetOpen(ctx, true))
	open, err := gate.IsOpen(ctx)
	require.NoError(t, err)
	assert.True(t, open)

	// El valor persiste como string, no como tipo nativo.
	row, err := settings.Get(ctx, entity.SettingVotingOpen)
	require.NoError(t, err)
	assert.Equal(t, "true", row.Value)

	require.NoError(t, gate.SetOpen(ctx, false))
	open, err = gate.IsOpen(ctx)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestGate_ValorNoBooleano_EsCerrado(t *testing.T) {
	settings := newFakeSettingRepo()
	require.NoError(t, settings.Upsert(context.Background(), entity.SettingVotingOpen, "TRUE"))
	gate := usecase.NewGateUseCase(settings)

	open, err := gate.IsOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open, "solo el literal \"true\" abre la votación")
}
