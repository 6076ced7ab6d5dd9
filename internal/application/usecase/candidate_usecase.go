package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

var reDigitsOnly = regexp.MustCompile(`^\d+$`)

// CandidateUseCase CRUD administrativo de candidatos. El núcleo de votación
// solo lee nivel y cargo de acá; la gestión es responsabilidad del admin.
type CandidateUseCase struct {
	candRepo repository.CandidateRepository
}

// NewCandidateUseCase construye el caso de uso de candidatos.
func NewCandidateUseCase(candRepo repository.CandidateRepository) *CandidateUseCase {
	return &CandidateUseCase{candRepo: candRepo}
}

// List lista candidatos, opcionalmente filtrados por nivel, más reciente primero.
func (uc *CandidateUseCase) List(ctx context.Context, level string) ([]dto.CandidateResponse, error) {
	candidates, err := uc.candRepo.List(ctx, level)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, *CandidateToResponse(c))
	}
	return out, nil
}

// GetByID devuelve un candidato; ErrNotFound si no existe.
func (uc *CandidateUseCase) GetByID(ctx context.Context, id string) (*dto.CandidateResponse, error) {
	cand, err := uc.candRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, domain.ErrNotFound
	}
	return CandidateToResponse(cand), nil
}

// Create alta de candidato. photoPath puede estar vacío (la foto es opcional).
func (uc *CandidateUseCase) Create(ctx context.Context, in dto.CreateCandidateRequest, photoPath string) (*dto.CandidateResponse, error) {
	if !entity.IsLevel(in.Level) {
		return nil, domain.ErrInvalidLevel
	}
	if !entity.IsPosition(strings.TrimSpace(in.Position)) {
		return nil, domain.ErrInvalidInput
	}
	year, err := validateYearLabel(in.Year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cand := &entity.Candidate{
		ID:         uuid.New().String(),
		Level:      in.Level,
		Position:   strings.TrimSpace(in.Position),
		PartyList:  strings.TrimSpace(in.PartyList),
		FirstName:  strings.TrimSpace(in.FirstName),
		MiddleName: strings.TrimSpace(in.MiddleName),
		LastName:   strings.TrimSpace(in.LastName),
		Gender:     in.Gender,
		Year:       year,
		PhotoPath:  photoPath,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cand.PartyList == "" || cand.FirstName == "" || cand.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.candRepo.Create(ctx, cand); err != nil {
		return nil, err
	}
	return CandidateToResponse(cand), nil
}

// Update edición parcial. Si photoPath no es nil la foto se reemplaza y se
// devuelve la ruta anterior para que el caller pueda limpiar el archivo.
func (uc *CandidateUseCase) Update(ctx context.Context, id string, in dto.UpdateCandidateRequest, photoPath *string) (*dto.CandidateResponse, string, error) {
	cand, err := uc.candRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if cand == nil {
		return nil, "", domain.ErrNotFound
	}

	oldPhoto := ""
	if photoPath != nil {
		oldPhoto = cand.PhotoPath
		cand.PhotoPath = *photoPath
	}
	if in.Level != nil {
		if !entity.IsLevel(*in.Level) {
			return nil, "", domain.ErrInvalidLevel
		}
		cand.Level = *in.Level
	}
	if in.Position != nil {
		if !entity.IsPosition(strings.TrimSpace(*in.Position)) {
			return nil, "", domain.ErrInvalidInput
		}
		cand.Position = strings.TrimSpace(*in.Position)
	}
	if in.PartyList != nil {
		cand.PartyList = strings.TrimSpace(*in.PartyList)
	}
	if in.FirstName != nil {
		cand.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.MiddleName != nil {
		cand.MiddleName = strings.TrimSpace(*in.MiddleName)
	}
	if in.LastName != nil {
		cand.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Gender != nil {
		cand.Gender = *in.Gender
	}
	if in.Year != nil {
		year, err := validateYearLabel(*in.Year)
		if err != nil {
			return nil, "", err
		}
		cand.Year = year
	}
	cand.UpdatedAt = time.Now()

	if err := uc.candRepo.Update(ctx, cand); err != nil {
		return nil, "", err
	}
	return CandidateToResponse(cand), oldPhoto, nil
}

// Delete elimina un candidato y devuelve la ruta de su foto (si tenía) para
// que el caller limpie el archivo.
func (uc *CandidateUseCase) Delete(ctx context.Context, id string) (string, error) {
	cand, err := uc.candRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if cand == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.candRepo.Delete(ctx, id); err != nil {
		return "", err
	}
	return cand.PhotoPath, nil
}

// validateYearLabel exige la etiqueta descriptiva ("1st Year", "Grade 11");
// solo dígitos se rechaza para no perder el contexto del nivel.
func validateYearLabel(raw string) (string, error) {
	year := strings.TrimSpace(raw)
	if year == "" || year == "NaN" {
		return "", domain.ErrInvalidInput
	}
	if reDigitsOnly.MatchString(year) {
		return "", domain.ErrInvalidInput
	}
	return year, nil
}

// CandidateToResponse mapea la entidad al DTO de salida.
func CandidateToResponse(c *entity.Candidate) *dto.CandidateResponse {
	if c == nil {
		return nil
	}
	return &dto.CandidateResponse{
		ID:         c.ID,
		Level:      c.Level,
		Position:   c.Position,
		PartyList:  c.PartyList,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		LastName:   c.LastName,
		FullName:   c.FullName(),
		Gender:     c.Gender,
		Year:       c.Year,
		PhotoPath:  c.PhotoPath,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
