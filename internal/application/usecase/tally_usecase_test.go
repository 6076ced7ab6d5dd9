package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

// fakeTallyRepo devuelve filas fijas y captura los filtros recibidos.
type fakeTallyRepo struct {
	rows         []repository.TallyRow
	gotLevel     string
	gotPosition  string
	timesInvoked int
}

func (f *fakeTallyRepo) Tally(_ context.Context, level, position string) ([]repository.TallyRow, error) {
	f.gotLevel = level
	f.gotPosition = position
	f.timesInvoked++
	return f.rows, nil
}

func TestTally_FiltroDeNivelSeCanonicaliza(t *testing.T) {
	repo := &fakeTallyRepo{rows: []repository.TallyRow{
		{
			CandidateID: "c-1", FirstName: "Ana", LastName: "Reyes",
			PartyList: "Partido Uno", Position: entity.PositionPresident,
			Level: entity.LevelSHS, Votes: 7,
			Share: decimal.RequireFromString("70.00"),
		},
		{
			CandidateID: "c-2", FirstName: "Luis", LastName: "Gómez",
			PartyList: "Partido Dos", Position: entity.PositionPresident,
			Level: entity.LevelSHS, Votes: 0,
			Share: decimal.Zero,
		},
	}}
	uc := usecase.NewTallyUseCase(repo)

	out, err := uc.Tally(context.Background(), "senior high", entity.PositionPresident)
	require.NoError(t, err)

	assert.Equal(t, entity.LevelSHS, repo.gotLevel, "el alias llega canonicalizado al repo")
	assert.Equal(t, entity.PositionPresident, repo.gotPosition)

	require.Len(t, out, 2)
	assert.Equal(t, int64(7), out[0].Votes)
	assert.True(t, out[0].Share.Equal(decimal.RequireFromString("70.00")))
	assert.Equal(t, int64(0), out[1].Votes, "los candidatos sin votos no desaparecen del conteo")
	assert.True(t, out[1].Share.IsZero())
}

func TestTally_SinFiltros(t *testing.T) {
	repo := &fakeTallyRepo{}
	uc := usecase.NewTallyUseCase(repo)

	out, err := uc.Tally(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, repo.gotLevel)
	assert.Empty(t, repo.gotPosition)
}

func TestTally_FiltroInvalido(t *testing.T) {
	repo := &fakeTallyRepo{}
	uc := usecase.NewTallyUseCase(repo)

	_, err := uc.Tally(context.Background(), "Night School", "")
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
	assert.Zero(t, repo.timesInvoked, "un filtro inválido no llega al storage")
}

// fakePDFGen captura las filas que recibiría Maroto.
type fakePDFGen struct {
	gotRows []repository.TallyRow
}

func (f *fakePDFGen) GenerateResultsPDF(_ context.Context, rows []repository.TallyRow, _ time.Time) ([]byte, error) {
	f.gotRows = rows
	return []byte("%PDF-fake"), nil
}

func TestReportResultsPDF(t *testing.T) {
	repo := &fakeTallyRepo{rows: []repository.TallyRow{
		{CandidateID: "c-1", FirstName: "Ana", LastName: "Reyes", Position: entity.PositionPresident, Level: entity.LevelSHS, Votes: 3},
	}}
	gen := &fakePDFGen{}
	uc := usecase.NewReportUseCase(repo, gen)

	out, err := uc.ResultsPDF(context.Background(), "shs", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, entity.LevelSHS, repo.gotLevel)
	require.Len(t, gen.gotRows, 1)
	assert.Equal(t, "c-1", gen.gotRows[0].CandidateID)
}

func TestReportResultsPDF_FiltroInvalido(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeTallyRepo{}, &fakePDFGen{})

	_, err := uc.ResultsPDF(context.Background(), "Night School", "")
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}
