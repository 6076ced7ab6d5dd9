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

// ImportTxRunner ejecuta fn con un VoterRepository atado a una transacción.
// Si fn devuelve error, todo lo insertado dentro de fn se revierte: una
// importación parcial nunca queda comiteada.
type ImportTxRunner interface {
	Run(ctx context.Context, fn func(voters repository.VoterRepository) error) error
}

// Sinónimos de encabezado por campo (matching case/espacio-insensitive).
var (
	headerSchoolID = []string{"school id", "schoolid", "id number", "student id", "sid", "id"}
	headerFullName = []string{"full name", "fullname", "name"}
	headerCourse   = []string{"course", "strand", "program"}
	headerYear     = []string{"year", "year level", "grade level", "grade"}
	headerStatus   = []string{"status", "voted", "has voted"}
	headerPassword = []string{"password", "pass", "pwd"}
)

// ImportUseCase es el reconciliador de importación masiva: convierte filas
// crudas de planilla en altas de padrón validadas, sin pisar cuentas
// existentes y sin duplicar dentro del archivo ni contra la base.
//
// Limitación documentada: dos importaciones concurrentes del MISMO nivel no
// están cubiertas por la precarga; el caller debe serializarlas.
type ImportUseCase struct {
	tx          ImportTxRunner
	sampleLimit int
}

// NewImportUseCase construye el reconciliador. sampleLimit acota las filas de
// muestra por categoría en el reporte (<=0 usa 20).
func NewImportUseCase(tx ImportTxRunner, sampleLimit int) *ImportUseCase {
	if sampleLimit <= 0 {
		sampleLimit = 20
	}
	return &ImportUseCase{tx: tx, sampleLimit: sampleLimit}
}

// ImportRoster procesa la planilla completa dentro de una sola transacción.
// Las filas malas se cuentan y se muestrean, nunca abortan el lote; un error
// de storage sí lo aborta entero vía rollback.
func (uc *ImportUseCase) ImportRoster(ctx context.Context, level string, rows []dto.RawRow) (*dto.ImportReport, error) {
	if !entity.IsLevel(level) {
		return nil, domain.ErrInvalidLevel
	}

	report := &dto.ImportReport{
		Level:            level,
		InvalidSamples:   []dto.RowSample{},
		DuplicateSamples: []dto.RowSample{},
	}

	err := uc.tx.Run(ctx, func(voters repository.VoterRepository) error {
		// Precarga de ids canónicos ya registrados para este nivel: un solo
		// read, chequeo O(1) por fila en vez de una query por fila.
		existing, err := voters.ListCanonicalSchoolIDs(ctx, level)
		if err != nil {
			return err
		}
		existingSet := make(map[string]struct{}, len(existing))
		for _, id := range existing {
			existingSet[id] = struct{}{}
		}

		seenInFile := make(map[string]struct{}) // dedupe dentro del mismo archivo

		for idx, row := range rows {
			schoolID := pick(row, headerSchoolID)
			fullName := pick(row, headerFullName)
			course := pick(row, headerCourse)
			yearRaw := pick(row, headerYear)
			status := toStatus(pick(row, headerStatus))
			passwordRaw := pick(row, headerPassword) // opcional

			if schoolID == "" || fullName == "" || yearRaw == "" {
				report.SkippedMissing++
				continue
			}

			year, err := taxonomy.ResolveYearLabel(level, yearRaw)
			if err != nil {
				report.Invalid++
				uc.addSample(&report.InvalidSamples, idx, schoolID, fullName, err.Error())
				continue
			}

			canonical := taxonomy.CanonicalSchoolID(schoolID)

			// Duplicado dentro del archivo: gana la primera aparición.
			if _, ok := seenInFile[canonical]; ok {
				report.DuplicatesFile++
				uc.addSample(&report.DuplicateSamples, idx, schoolID, fullName, "Duplicate in file")
				continue
			}

			// Ya existe en el padrón de este nivel: la importación nunca
			// sobreescribe cuentas (solo agrega votantes nuevos).
			if _, ok := existingSet[canonical]; ok {
				report.DuplicatesDB++
				uc.addSample(&report.DuplicateSamples, idx, schoolID, fullName, "Already exists in database for this level")
				continue
			}

			hash, err := auth.NormalizeCredential(passwordRaw)
			if err != nil {
				return err
			}
			now := time.Now()
			voter := &entity.Voter{
				ID:           uuid.New().String(),
				SchoolID:     strings.TrimSpace(schoolID),
				FullName:     strings.TrimSpace(fullName),
				Course:       strings.TrimSpace(course),
				Year:         year,
				Status:       status,
				Level:        level,
				PasswordHash: hash,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := voters.Create(ctx, voter); err != nil {
				return err
			}
			report.Inserted++
			seenInFile[canonical] = struct{}{}
			// Evita que una tercera fila con el mismo id también inserte.
			existingSet[canonical] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// addSample agrega una fila de muestra respetando el límite. El número de fila
// reportado es 1-based contando el encabezado como fila 1 (idx 0 → fila 2).
func (uc *ImportUseCase) addSample(samples *[]dto.RowSample, idx int, schoolID, fullName, reason string) {
	if len(*samples) >= uc.sampleLimit {
		return
	}
	*samples = append(*samples, dto.RowSample{
		Row:      idx + 2,
		SchoolID: schoolID,
		FullName: fullName,
		Reason:   reason,
	})
}

// pick extrae el valor de la primera columna cuyo encabezado (case/espacio-
// insensitive) coincida con alguno de los sinónimos. "NaN" se trata como vacío
// (artefacto común de planillas exportadas).
func pick(row dto.RawRow, names []string) string {
	for _, name := range names {
		for header, value := range row {
			if strings.EqualFold(strings.TrimSpace(header), name) {
				s := strings.TrimSpace(value)
				if s == "NaN" {
					return ""
				}
				return s
			}
		}
	}
	return ""
}

// toStatus interpreta la columna de estado: tokens afirmativos → 1, resto → 0.
func toStatus(v string) int {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "voted":
		return entity.StatusVoted
	}
	return entity.StatusNotVoted
}
