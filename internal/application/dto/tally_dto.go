package dto

import "github.com/shopspring/decimal"

// TallyRowResponse una fila del conteo por candidato.
// Share es el porcentaje de votos dentro de la contienda (level, position).
type TallyRowResponse struct {
	CandidateID string          `json:"candidate_id"`
	FirstName   string          `json:"first_name"`
	MiddleName  string          `json:"middle_name,omitempty"`
	LastName    string          `json:"last_name"`
	PartyList   string          `json:"party_list"`
	Position    string          `json:"position"`
	Level       string          `json:"level"`
	PhotoPath   string          `json:"photo_path,omitempty"`
	Votes       int64           `json:"votes"`
	Share       decimal.Decimal `json:"share"`
}
