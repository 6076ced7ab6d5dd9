package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

func validCandidateReq() dto.CreateCandidateRequest {
	return dto.CreateCandidateRequest{
		Level: entity.LevelCollege, Position: entity.PositionPresident,
		PartyList: "Partido Uno", FirstName: "Luis", MiddleName: "M.",
		LastName: "Gómez", Gender: "Male", Year: "2nd Year",
	}
}

func TestCandidateCreate_Exitoso(t *testing.T) {
	uc := usecase.NewCandidateUseCase(newFakeCandidateRepo())

	resp, err := uc.Create(context.Background(), validCandidateReq(), "uploads/candidates/foto.jpg")
	require.NoError(t, err)

	assert.Equal(t, "Luis M. Gómez", resp.FullName)
	assert.Equal(t, "uploads/candidates/foto.jpg", resp.PhotoPath)
	assert.NotEmpty(t, resp.ID)
}

func TestCandidateCreate_Validaciones(t *testing.T) {
	uc := usecase.NewCandidateUseCase(newFakeCandidateRepo())
	ctx := context.Background()

	req := validCandidateReq()
	req.Level = "Night School"
	_, err := uc.Create(ctx, req, "")
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)

	req = validCandidateReq()
	req.Position = "Mascot"
	_, err = uc.Create(ctx, req, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = validCandidateReq()
	req.PartyList = "  "
	_, err = uc.Create(ctx, req, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Año solo-dígitos: sin contexto de nivel no se acepta.
	req = validCandidateReq()
	req.Year = "2"
	_, err = uc.Create(ctx, req, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = validCandidateReq()
	req.Year = "NaN"
	_, err = uc.Create(ctx, req, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCandidateUpdate_ReemplazoDeFoto(t *testing.T) {
	uc := usecase.NewCandidateUseCase(newFakeCandidateRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, validCandidateReq(), "uploads/candidates/vieja.jpg")
	require.NoError(t, err)

	nueva := "uploads/candidates/nueva.jpg"
	resp, oldPhoto, err := uc.Update(ctx, created.ID, dto.UpdateCandidateRequest{}, &nueva)
	require.NoError(t, err)
	assert.Equal(t, nueva, resp.PhotoPath)
	assert.Equal(t, "uploads/candidates/vieja.jpg", oldPhoto,
		"la ruta anterior vuelve para que el caller limpie el archivo")

	// Sin foto nueva la actual se conserva y no hay nada que limpiar.
	resp, oldPhoto, err = uc.Update(ctx, created.ID, dto.UpdateCandidateRequest{
		PartyList: strPtr("Partido Dos"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, nueva, resp.PhotoPath)
	assert.Empty(t, oldPhoto)
	assert.Equal(t, "Partido Dos", resp.PartyList)
}

func TestCandidateUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewCandidateUseCase(newFakeCandidateRepo())

	_, _, err := uc.Update(context.Background(), "no-existe", dto.UpdateCandidateRequest{}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCandidateDelete_DevuelveFoto(t *testing.T) {
	uc := usecase.NewCandidateUseCase(newFakeCandidateRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, validCandidateReq(), "uploads/candidates/foto.jpg")
	require.NoError(t, err)

	photo, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/candidates/foto.jpg", photo)

	_, err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCandidateGetByID_Inexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewCandidateUseCase(newFakeCandidateRepo())

	resp, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, resp)
}
