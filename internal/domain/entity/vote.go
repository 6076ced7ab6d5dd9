package entity

import "time"

// Vote es un asiento del libro de votos: una papeleta emitida.
// Position y Level se copian del candidato al momento de emitir para que la
// restricción de unicidad (voter_id, position, level) sea autocontenida.
type Vote struct {
	ID          int64
	VoterID     string
	CandidateID string
	Position    string
	Level       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
