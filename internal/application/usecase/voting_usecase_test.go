package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

const (
	testVoterID     = "00000000-0000-0000-0000-0000000000aa"
	testCandidateID = "00000000-0000-0000-0000-0000000000bb"
)

// votingFixture arma el caso de uso con fakes y datos base: un votante de SHS
// y un candidato a President de SHS, con la votación abierta.
type votingFixture struct {
	voters     *fakeVoterRepo
	candidates *fakeCandidateRepo
	votes      *fakeVoteRepo
	settings   *fakeSettingRepo
	gate       *usecase.GateUseCase
	uc         *usecase.VotingUseCase
}

func newVotingFixture(t *testing.T) *votingFixture {
	t.Helper()
	f := &votingFixture{
		voters:     newFakeVoterRepo(),
		candidates: newFakeCandidateRepo(),
		votes:      newFakeVoteRepo(),
		settings:   newFakeSettingRepo(),
	}
	f.gate = usecase.NewGateUseCase(f.settings)
	f.uc = usecase.NewVotingUseCase(f.gate, f.voters, f.candidates, f.votes)

	ctx := context.Background()
	require.NoError(t, f.voters.Create(ctx, &entity.Voter{
		ID: testVoterID, SchoolID: "SHS-001", FullName: "Ana Reyes",
		Year: "Grade 11", Level: entity.LevelSHS,
	}))
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: testCandidateID, Level: entity.LevelSHS, Position: entity.PositionPresident,
		FirstName: "Luis", LastName: "Gómez", Gender: "Male", Year: "Grade 12",
	}))
	require.NoError(t, f.gate.SetOpen(ctx, true))
	return f
}

func TestCastVote_Exitoso(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()

	resp, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
	require.NoError(t, err)

	assert.Equal(t, testVoterID, resp.VoterID)
	assert.Equal(t, testCandidateID, resp.CandidateID)
	assert.Equal(t, entity.PositionPresident, resp.Position)
	assert.Equal(t, entity.LevelSHS, resp.Level)
	assert.NotZero(t, resp.ID, "el voto debe recibir ID del storage")
	assert.Equal(t, 1, f.votes.count())
}

func TestCastVote_VotacionCerrada_NoEscribe(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.SetOpen(ctx, false))

	_, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
	assert.ErrorIs(t, err, domain.ErrVotingClosed)
	assert.Equal(t, 0, f.votes.count(), "un intento con gate cerrado no debe dejar fila")
}

func TestCastVote_GateAusente_EquivaleACerrado(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	// Settings sin fila voting_open: estado inicial del sistema.
	f.settings.settings = map[string]string{}

	_, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
	assert.ErrorIs(t, err, domain.ErrVotingClosed)
}

func TestCastVote_VotanteInexistente_SesionInvalida(t *testing.T) {
	f := newVotingFixture(t)

	_, err := f.uc.CastVote(context.Background(), "no-existe", testCandidateID)
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestCastVote_NivelIndeterminable(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.voters.Create(ctx, &entity.Voter{
		ID: "voter-raro", SchoolID: "X-9", FullName: "Sin Nivel",
		Year: "Grade 11", Level: "Night School",
	}))

	_, err := f.uc.CastVote(ctx, "voter-raro", testCandidateID)
	assert.ErrorIs(t, err, domain.ErrEligibilityUndetermined)
}

func TestCastVote_CandidatoInexistente(t *testing.T) {
	f := newVotingFixture(t)

	_, err := f.uc.CastVote(context.Background(), testVoterID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestCastVote_NivelCruzado(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: "cand-college", Level: entity.LevelCollege, Position: entity.PositionPresident,
		FirstName: "Marta", LastName: "Ibarra", Gender: "Female", Year: "2nd Year",
	}))

	_, err := f.uc.CastVote(ctx, testVoterID, "cand-college")
	assert.ErrorIs(t, err, domain.ErrCrossLevelVote)
	assert.Equal(t, 0, f.votes.count())
}

// El nivel se compara en forma canónica: "senior high" en el candidato y "SHS"
// en el votante son el mismo nivel, no un cruce.
func TestCastVote_NivelEquivalenteNoEsCruce(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: "cand-alias", Level: "Senior High", Position: entity.PositionSecretary,
		FirstName: "Pia", LastName: "Cruz", Gender: "Female", Year: "Grade 11",
	}))

	resp, err := f.uc.CastVote(ctx, testVoterID, "cand-alias")
	require.NoError(t, err)
	assert.Equal(t, entity.LevelSHS, resp.Level, "el voto guarda el nivel canónico")
}

func TestCastVote_CandidatoSinCargo(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: "cand-malo", Level: entity.LevelSHS, Position: "   ",
		FirstName: "Eva", LastName: "Lim", Gender: "Female", Year: "Grade 12",
	}))

	_, err := f.uc.CastVote(ctx, testVoterID, "cand-malo")
	assert.ErrorIs(t, err, domain.ErrMalformedCandidate)
}

func TestCastVote_Duplicado_DevuelveVotoExistente(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()

	first, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
	require.NoError(t, err)

	// Otro candidato al MISMO cargo y nivel: mismo slot, debe rechazarse.
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: "cand-rival", Level: entity.LevelSHS, Position: entity.PositionPresident,
		FirstName: "Rita", LastName: "Vega", Gender: "Female", Year: "Grade 11",
	}))

	_, err = f.uc.CastVote(ctx, testVoterID, "cand-rival")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateVote)

	var dup *usecase.DuplicateVoteError
	require.ErrorAs(t, err, &dup)
	require.NotNil(t, dup.Existing, "el conflicto debe llevar el voto ya registrado")
	assert.Equal(t, first.ID, dup.Existing.ID)
	assert.Equal(t, testCandidateID, dup.Existing.CandidateID,
		"el voto que queda es el primero, no el del reintento")
	assert.Equal(t, 1, f.votes.count(), "el duplicado no agrega filas")
}

func TestCastVote_CargosDistintosSonIndependientes(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: "cand-tesorero", Level: entity.LevelSHS, Position: entity.PositionTreasurer,
		FirstName: "Noel", LastName: "Sy", Gender: "Male", Year: "Grade 12",
	}))

	_, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
	require.NoError(t, err)
	_, err = f.uc.CastVote(ctx, testVoterID, "cand-tesorero")
	require.NoError(t, err)

	assert.Equal(t, 2, f.votes.count())
}

// Carrera real: N goroutines intentan el mismo slot a la vez. El chequeo previo
// puede dejar pasar a varias, pero el índice único (reproducido por el fake)
// solo comitea una.
func TestCastVote_CarreraConcurrente_SoloUnoGana(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var wins, dups int
	for err := range errCh {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrDuplicateVote):
			dups++
		default:
			t.Fatalf("error inesperado en la carrera: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactamente un request debe ganar la carrera")
	assert.Equal(t, n-1, dups)
	assert.Equal(t, 1, f.votes.count())
}

func TestListVotesForVoter_OrdenadoPorCargo(t *testing.T) {
	f := newVotingFixture(t)
	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &entity.Candidate{
		ID: "cand-auditor", Level: entity.LevelSHS, Position: entity.PositionAuditor,
		FirstName: "Leo", LastName: "Tan", Gender: "Male", Year: "Grade 11",
	}))

	_, err := f.uc.CastVote(ctx, testVoterID, testCandidateID)
	require.NoError(t, err)
	_, err = f.uc.CastVote(ctx, testVoterID, "cand-auditor")
	require.NoError(t, err)

	votes, err := f.uc.ListVotesForVoter(ctx, testVoterID)
	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.Equal(t, entity.PositionAuditor, votes[0].Position)
	assert.Equal(t, entity.PositionPresident, votes[1].Position)
}
