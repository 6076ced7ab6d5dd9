package dto

import "time"

// CastVoteRequest entrada para emitir un voto.
type CastVoteRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
}

// VoteResponse salida de un asiento del libro de votos.
type VoteResponse struct {
	ID          int64     `json:"id"`
	VoterID     string    `json:"voter_id"`
	CandidateID string    `json:"candidate_id"`
	Position    string    `json:"position"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
}

// DuplicateVoteResponse respuesta 409: incluye el voto ya registrado para transparencia.
type DuplicateVoteResponse struct {
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Existing *VoteResponse `json:"existing,omitempty"`
}

// GateStatusResponse estado del interruptor global de votación.
type GateStatusResponse struct {
	Open bool `json:"open"`
}
