package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/usecase"
)

// TallyHandler maneja el conteo agregado y el reporte PDF de resultados.
type TallyHandler struct {
	tally  *usecase.TallyUseCase
	report *usecase.ReportUseCase
}

// NewTallyHandler construye el handler de resultados.
func NewTallyHandler(tally *usecase.TallyUseCase, report *usecase.ReportUseCase) *TallyHandler {
	return &TallyHandler{tally: tally, report: report}
}

// Tally godoc
// @Summary      Conteo agregado por candidato
// @Tags         results
// @Produce      json
// @Param        level     query  string  false  "filtro por nivel"
// @Param        position  query  string  false  "filtro por cargo"
// @Success      200  {array}  dto.TallyRowResponse
// @Security     BearerAuth
// @Router       /api/results [get]
func (h *TallyHandler) Tally(c *fiber.Ctx) error {
	rows, err := h.tally.Tally(c.Context(), c.Query("level"), c.Query("position"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(rows)
}

// ResultsPDF godoc
// @Summary      Reporte PDF de resultados
// @Tags         results
// @Produce      application/pdf
// @Param        level     query  string  false  "filtro por nivel"
// @Param        position  query  string  false  "filtro por cargo"
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/results/pdf [get]
func (h *TallyHandler) ResultsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.report.ResultsPDF(c.Context(), c.Query("level"), c.Query("position"))
	if err != nil {
		return failDomain(c, err)
	}
	filename := fmt.Sprintf("resultados-%s.pdf", time.Now().Format("20060102-1504"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
