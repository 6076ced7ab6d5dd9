package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/eleccion-api/internal/application/auth"
	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
)

// VoterUseCase administra el padrón fuera de la importación masiva: listados,
// alta manual, ediciones y bajas. La etiqueta de año pasa por el mismo
// resolver que la importación, así no hay dos validaciones divergentes.
type VoterUseCase struct {
	voterRepo repository.VoterRepository
}

// NewVoterUseCase construye el caso de uso del padrón.
func NewVoterUseCase(voterRepo repository.VoterRepository) *VoterUseCase {
	return &VoterUseCase{voterRepo: voterRepo}
}

// List lista el padrón, opcionalmente filtrado por nivel.
func (uc *VoterUseCase) List(ctx context.Context, level string) ([]dto.VoterResponse, error) {
	if level != "" {
		resolved, ok := taxonomy.ResolveLevel(level)
		if !ok {
			return nil, domain.ErrInvalidLevel
		}
		level = resolved
	}
	voters, err := uc.voterRepo.ListByLevel(ctx, level)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoterResponse, 0, len(voters))
	for _, v := range voters {
		out = append(out, *auth.VoterToResponse(v))
	}
	return out, nil
}

// GetByID devuelve un votante; ErrNotFound si no existe.
func (uc *VoterUseCase) GetByID(ctx context.Context, id string) (*dto.VoterResponse, error) {
	voter, err := uc.voterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrNotFound
	}
	return auth.VoterToResponse(voter), nil
}

// Create alta manual de un votante. Requiere password; el año se canonicaliza
// con el resolver. Devuelve ErrVoterExists si (school id, nivel) ya existe.
func (uc *VoterUseCase) Create(ctx context.Context, in dto.CreateVoterRequest) (*dto.VoterResponse, error) {
	if !entity.IsLevel(in.Level) {
		return nil, domain.ErrInvalidLevel
	}
	schoolID := strings.TrimSpace(in.SchoolID)
	fullName := strings.TrimSpace(in.FullName)
	if schoolID == "" || fullName == "" || strings.TrimSpace(in.Year) == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.ErrMissingPassword
	}
	year, err := taxonomy.ResolveYearLabel(in.Level, in.Year)
	if err != nil {
		return nil, err
	}
	status := entity.StatusNotVoted
	if in.Status != nil {
		if *in.Status != entity.StatusNotVoted && *in.Status != entity.StatusVoted {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}
	hash, err := auth.NormalizeCredential(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	voter := &entity.Voter{
		ID:           uuid.New().String(),
		SchoolID:     schoolID,
		FullName:     fullName,
		Course:       strings.TrimSpace(in.Course),
		Year:         year,
		Status:       status,
		Level:        in.Level,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.voterRepo.Create(ctx, voter); err != nil {
		return nil, err
	}
	return auth.VoterToResponse(voter), nil
}

// Update edición parcial: solo los campos presentes se modifican. El año se
// re-canonicaliza contra el nivel del registro; la credencial pasa por la
// normalización explícita antes de escribirse.
func (uc *VoterUseCase) Update(ctx context.Context, id string, in dto.UpdateVoterRequest) (*dto.VoterResponse, error) {
	voter, err := uc.voterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrNotFound
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		voter.FullName = name
	}
	if in.Course != nil {
		voter.Course = strings.TrimSpace(*in.Course)
	}
	if in.Year != nil {
		year, err := taxonomy.ResolveYearLabel(voter.Level, *in.Year)
		if err != nil {
			return nil, err
		}
		voter.Year = year
	}
	if in.Status != nil {
		if *in.Status != entity.StatusNotVoted && *in.Status != entity.StatusVoted {
			return nil, domain.ErrInvalidInput
		}
		voter.Status = *in.Status
	}
	if strings.TrimSpace(in.Password) != "" {
		hash, err := auth.NormalizeCredential(in.Password)
		if err != nil {
			return nil, err
		}
		voter.PasswordHash = hash
	}
	voter.UpdatedAt = time.Now()

	if err := uc.voterRepo.Update(ctx, voter); err != nil {
		return nil, err
	}
	return auth.VoterToResponse(voter), nil
}

// UpdateStatus cambio rápido del flag 0/1.
func (uc *VoterUseCase) UpdateStatus(ctx context.Context, id string, status int) (*dto.VoterResponse, error) {
	return uc.Update(ctx, id, dto.UpdateVoterRequest{Status: &status})
}

// Delete elimina un votante del padrón.
func (uc *VoterUseCase) Delete(ctx context.Context, id string) error {
	voter, err := uc.voterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if voter == nil {
		return domain.ErrNotFound
	}
	return uc.voterRepo.Delete(ctx, id)
}
