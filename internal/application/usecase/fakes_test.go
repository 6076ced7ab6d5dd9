package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El fake de votos reproduce
// el índice único (voter_id, position, level) bajo mutex para poder ejercitar
// la carrera de duplicados con goroutines reales.
// ──────────────────────────────────────────────────────────────────────────────

type fakeVoterRepo struct {
	mu     sync.Mutex
	voters map[string]*entity.Voter // por ID
}

func newFakeVoterRepo() *fakeVoterRepo {
	return &fakeVoterRepo{voters: make(map[string]*entity.Voter)}
}

func (f *fakeVoterRepo) Create(_ context.Context, v *entity.Voter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	canonical := taxonomy.CanonicalSchoolID(v.SchoolID)
	for _, existing := range f.voters {
		if taxonomy.CanonicalSchoolID(existing.SchoolID) == canonical && existing.Level == v.Level {
			return domain.ErrVoterExists
		}
	}
	cp := *v
	f.voters[v.ID] = &cp
	return nil
}

func (f *fakeVoterRepo) GetByID(_ context.Context, id string) (*entity.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.voters[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVoterRepo) GetBySchoolIDAndLevel(_ context.Context, canonical, level string) (*entity.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.voters {
		if taxonomy.CanonicalSchoolID(v.SchoolID) == canonical && v.Level == level {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeVoterRepo) ListByLevel(_ context.Context, level string) ([]*entity.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Voter
	for _, v := range f.voters {
		if level == "" || v.Level == level {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVoterRepo) ListCanonicalSchoolIDs(_ context.Context, level string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, v := range f.voters {
		if v.Level == level {
			out = append(out, taxonomy.CanonicalSchoolID(v.SchoolID))
		}
	}
	return out, nil
}

func (f *fakeVoterRepo) Update(_ context.Context, v *entity.Voter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *v
	f.voters[v.ID] = &cp
	return nil
}

func (f *fakeVoterRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.voters, id)
	return nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[string]*entity.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]*entity.Candidate)}
}

func (f *fakeCandidateRepo) Create(_ context.Context, c *entity.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.candidates[c.ID] = &cp
	return nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id string) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.candidates[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCandidateRepo) List(_ context.Context, level string) ([]*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Candidate
	for _, c := range f.candidates {
		if level == "" || c.Level == level {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCandidateRepo) Update(_ context.Context, c *entity.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.candidates[c.ID] = &cp
	return nil
}

func (f *fakeCandidateRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.candidates, id)
	return nil
}

type voteKey struct {
	voterID  string
	position string
	level    string
}

type fakeVoteRepo struct {
	mu     sync.Mutex
	nextID int64
	votes  map[voteKey]*entity.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[voteKey]*entity.Vote)}
}

// Insert reproduce la semántica del índice único: chequeo y alta son atómicos
// bajo el mutex, igual que el INSERT real contra el índice.
func (f *fakeVoteRepo) Insert(_ context.Context, v *entity.Vote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := voteKey{v.VoterID, v.Position, v.Level}
	if _, ok := f.votes[key]; ok {
		return domain.ErrDuplicateVote
	}
	f.nextID++
	v.ID = f.nextID
	cp := *v
	f.votes[key] = &cp
	return nil
}

func (f *fakeVoteRepo) FindByVoterPositionLevel(_ context.Context, voterID, position, level string) (*entity.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.votes[voteKey{voterID, position, level}]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVoteRepo) ListByVoter(_ context.Context, voterID string) ([]*entity.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Vote
	for _, v := range f.votes {
		if v.VoterID == voterID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeVoteRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.votes)
}

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]string)}
}

func (f *fakeSettingRepo) Get(_ context.Context, key string) (*entity.Setting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.settings[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{Key: key, Value: value}, nil
}

func (f *fakeSettingRepo) Upsert(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[key] = value
	return nil
}

// fakeTxRunner ejecuta fn directamente contra el repo en memoria (sin rollback).
type fakeTxRunner struct {
	voters repository.VoterRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.VoterRepository) error) error {
	return fn(f.voters)
}
