package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/infrastructure/spreadsheet"
)

// VoterHandler maneja el padrón: CRUD manual e importación masiva.
type VoterHandler struct {
	uc       *usecase.VoterUseCase
	importer *usecase.ImportUseCase
}

// NewVoterHandler construye el handler del padrón.
func NewVoterHandler(uc *usecase.VoterUseCase, importer *usecase.ImportUseCase) *VoterHandler {
	return &VoterHandler{uc: uc, importer: importer}
}

// List godoc
// @Summary      Listar el padrón
// @Tags         voters
// @Produce      json
// @Param        level  query  string  false  "filtro por nivel"
// @Success      200  {array}  dto.VoterResponse
// @Security     BearerAuth
// @Router       /api/voters [get]
func (h *VoterHandler) List(c *fiber.Ctx) error {
	voters, err := h.uc.List(c.Context(), c.Query("level"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(voters)
}

// GetByID godoc
// @Summary      Obtener un votante
// @Tags         voters
// @Produce      json
// @Param        id  path  string  true  "ID del votante"
// @Success      200  {object}  dto.VoterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/voters/{id} [get]
func (h *VoterHandler) GetByID(c *fiber.Ctx) error {
	voter, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(voter)
}

// Create godoc
// @Summary      Alta manual de un votante
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVoterRequest  true  "datos del votante"
// @Success      201   {object}  dto.VoterResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/voters [post]
func (h *VoterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVoterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	voter, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(voter)
}

// Update godoc
// @Summary      Editar un votante
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del votante"
// @Param        body  body  dto.UpdateVoterRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.VoterResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/voters/{id} [put]
func (h *VoterHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVoterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	voter, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(voter)
}

// UpdateStatus godoc
// @Summary      Cambiar el flag de estado (0/1)
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del votante"
// @Param        body  body  dto.UpdateStatusRequest  true  "status"
// @Success      200   {object}  dto.VoterResponse
// @Security     BearerAuth
// @Router       /api/voters/{id}/status [patch]
func (h *VoterHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	voter, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(voter)
}

// Delete godoc
// @Summary      Eliminar un votante
// @Tags         voters
// @Param        id  path  string  true  "ID del votante"
// @Success      204
// @Security     BearerAuth
// @Router       /api/voters/{id} [delete]
func (h *VoterHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return failDomain(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar padrón desde planilla (xlsx/csv)
// @Tags         voters
// @Accept       multipart/form-data
// @Produce      json
// @Param        level  formData  string  true  "nivel destino"
// @Param        file   formData  file    true  "planilla"
// @Success      200    {object}  dto.ImportReport
// @Failure      400    {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/voters/import [post]
func (h *VoterHandler) Import(c *fiber.Ctx) error {
	level := c.FormValue("level")
	if level == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "level es requerido"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo de planilla requerido (campo file)"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir la planilla"})
	}
	defer f.Close()

	rows, err := spreadsheet.ReadRoster(fileHeader.Filename, f)
	if err != nil {
		return failDomain(c, err)
	}

	report, err := h.importer.ImportRoster(c.Context(), level, rows)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(report)
}
