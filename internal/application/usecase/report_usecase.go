package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
)

// ResultsPDFGenerator puerto de generación del reporte de resultados en PDF.
type ResultsPDFGenerator interface {
	GenerateResultsPDF(ctx context.Context, rows []repository.TallyRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase arma el reporte imprimible de resultados a partir del conteo.
type ReportUseCase struct {
	tallyRepo repository.TallyRepository
	pdfGen    ResultsPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(tallyRepo repository.TallyRepository, pdfGen ResultsPDFGenerator) *ReportUseCase {
	return &ReportUseCase{tallyRepo: tallyRepo, pdfGen: pdfGen}
}

// ResultsPDF genera el PDF del conteo actual con los mismos filtros que el tally.
func (uc *ReportUseCase) ResultsPDF(ctx context.Context, levelFilter, positionFilter string) ([]byte, error) {
	level := ""
	if levelFilter != "" {
		resolved, ok := taxonomy.ResolveLevel(levelFilter)
		if !ok {
			return nil, domain.ErrInvalidLevel
		}
		level = resolved
	}
	rows, err := uc.tallyRepo.Tally(ctx, level, positionFilter)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateResultsPDF(ctx, rows, time.Now())
}
