// Package pdf implementa el reporte imprimible de resultados de la elección.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada contienda (Nivel · Cargo):                         │
//	│    SUBTÍTULO: Nivel — Cargo                                  │
//	│    TABLA: # | Candidato | Partido | Votos | %                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de origen del conteo                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoResultsGenerator implementa usecase.ResultsPDFGenerator usando Maroto v2.
type MarotoResultsGenerator struct{}

var _ usecase.ResultsPDFGenerator = (*MarotoResultsGenerator)(nil)

// NewMarotoResultsGenerator construye el generador.
func NewMarotoResultsGenerator() *MarotoResultsGenerator { return &MarotoResultsGenerator{} }

// GenerateResultsPDF genera el PDF de resultados y devuelve sus bytes.
// Las filas llegan ya ordenadas por nivel, cargo y votos descendentes.
func (g *MarotoResultsGenerator) GenerateResultsPDF(
	_ context.Context,
	rows []repository.TallyRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resultados de la Elección", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(rows) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Sin candidatos registrados para el filtro solicitado.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	}

	// Una sección por contienda, en el orden en que llegan las filas.
	var curLevel, curPosition string
	rank := 0
	for _, r := range rows {
		if r.Level != curLevel || r.Position != curPosition {
			curLevel, curPosition = r.Level, r.Position
			rank = 0
			m.AddRows(contestTitleRow(curLevel, curPosition))
			m.AddRows(tableHeaderRow())
		}
		rank++
		m.AddRows(candidateRow(rank, r))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RESULTADOS DE LA ELECCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Conteo oficial por contienda", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// contestTitleRow: subtítulo de la contienda (nivel — cargo).
func contestTitleRow(level, position string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(level+" — "+position, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de candidatos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("#", 1, align.Center),
		h("Candidato", 5, align.Left),
		h("Partido", 3, align.Left),
		h("Votos", 1, align.Right),
		h("%", 2, align.Right),
	)
}

// candidateRow: una fila por candidato, con su puesto dentro de la contienda.
func candidateRow(rank int, r repository.TallyRow) core.Row {
	name := candidateName(r)
	style := fontstyle.Normal
	if rank == 1 && r.Votes > 0 {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(1).Add(text.New(
			strconv.Itoa(rank),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			name,
			props.Text{Size: 8, Style: style, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			nonEmpty(r.PartyList, "Independiente"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
		)),
		col.New(1).Add(text.New(
			strconv.FormatInt(r.Votes, 10),
			props.Text{Size: 8, Style: style, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			r.Share.StringFixed(2)+"%",
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// footerRow: leyenda del origen del conteo.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Conteo agregado directamente del registro de votos. "+
				"Los candidatos sin votos figuran con 0.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func candidateName(r repository.TallyRow) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.FirstName, r.MiddleName, r.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
