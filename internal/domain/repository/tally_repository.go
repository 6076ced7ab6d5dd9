package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TallyRow es una fila del conteo agregado: un candidato con su total de votos
// y su participación dentro de la contienda (level, position).
type TallyRow struct {
	CandidateID string
	FirstName   string
	MiddleName  string
	LastName    string
	PartyList   string
	Position    string
	Level       string
	PhotoPath   string
	Votes       int64
	// Share es el porcentaje de votos dentro de su contienda (NUMERIC en DB).
	// Cero cuando la contienda todavía no tiene votos.
	Share decimal.Decimal
}

// TallyRepository define el puerto de solo lectura del conteo agregado.
// Los filtros vacíos no restringen. El conteo es un LEFT JOIN: un candidato
// sin votos aparece con Votes = 0, nunca desaparece.
type TallyRepository interface {
	Tally(ctx context.Context, level, position string) ([]TallyRow, error)
}
