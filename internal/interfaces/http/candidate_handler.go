package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/application/usecase"
)

// CandidateHandler maneja el CRUD de candidatos, incluida la foto (multipart).
type CandidateHandler struct {
	uc       *usecase.CandidateUseCase
	photoDir string
}

// NewCandidateHandler construye el handler de candidatos.
func NewCandidateHandler(uc *usecase.CandidateUseCase, photoDir string) *CandidateHandler {
	return &CandidateHandler{uc: uc, photoDir: photoDir}
}

// List godoc
// @Summary      Listar candidatos
// @Tags         candidates
// @Produce      json
// @Param        level  query  string  false  "filtro por nivel"
// @Success      200  {array}  dto.CandidateResponse
// @Security     BearerAuth
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	candidates, err := h.uc.List(c.Context(), c.Query("level"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(candidates)
}

// GetByID godoc
// @Summary      Obtener un candidato
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "ID del candidato"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	candidate, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(candidate)
}

// Create godoc
// @Summary      Alta de candidato (multipart, foto opcional en campo photo)
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.CandidateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	photoPath, err := h.savePhoto(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}

	candidate, err := h.uc.Create(c.Context(), in, photoPath)
	if err != nil {
		h.removePhoto(photoPath)
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(candidate)
}

// Update godoc
// @Summary      Editar candidato (multipart, foto opcional reemplaza la anterior)
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "ID del candidato"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var photoPath *string
	if saved, err := h.savePhoto(c); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	} else if saved != "" {
		photoPath = &saved
	}

	candidate, oldPhoto, err := h.uc.Update(c.Context(), c.Params("id"), in, photoPath)
	if err != nil {
		if photoPath != nil {
			h.removePhoto(*photoPath)
		}
		return failDomain(c, err)
	}
	if photoPath != nil && oldPhoto != "" {
		h.removePhoto(oldPhoto)
	}
	return c.JSON(candidate)
}

// Delete godoc
// @Summary      Eliminar candidato (y su foto en disco)
// @Tags         candidates
// @Param        id  path  string  true  "ID del candidato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	photoPath, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return failDomain(c, err)
	}
	h.removePhoto(photoPath)
	return c.SendStatus(fiber.StatusNoContent)
}

// savePhoto guarda la foto del multipart (campo photo) con nombre aleatorio.
// Devuelve "" si no vino foto.
func (h *CandidateHandler) savePhoto(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return "", nil // sin foto
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	name := uuid.NewString() + ext
	dst := filepath.Join(h.photoDir, name)
	if err := c.SaveFile(fileHeader, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// removePhoto borra la foto en disco; ignora el error (la foto puede no existir).
func (h *CandidateHandler) removePhoto(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
