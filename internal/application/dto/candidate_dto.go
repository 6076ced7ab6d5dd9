package dto

import "time"

// CreateCandidateRequest alta de candidato. La foto llega por multipart aparte.
type CreateCandidateRequest struct {
	Level      string `json:"level" form:"level" validate:"required,oneof=Elementary JHS SHS College"`
	Position   string `json:"position" form:"position" validate:"required"`
	PartyList  string `json:"party_list" form:"party_list" validate:"required,max=100"`
	FirstName  string `json:"first_name" form:"first_name" validate:"required,max=100"`
	MiddleName string `json:"middle_name" form:"middle_name" validate:"omitempty,max=100"`
	LastName   string `json:"last_name" form:"last_name" validate:"required,max=100"`
	Gender     string `json:"gender" form:"gender" validate:"required,oneof=Male Female"`
	Year       string `json:"year" form:"year" validate:"required,max=50"`
}

// UpdateCandidateRequest edición parcial de candidato.
type UpdateCandidateRequest struct {
	Level      *string `json:"level" form:"level"`
	Position   *string `json:"position" form:"position"`
	PartyList  *string `json:"party_list" form:"party_list"`
	FirstName  *string `json:"first_name" form:"first_name"`
	MiddleName *string `json:"middle_name" form:"middle_name"`
	LastName   *string `json:"last_name" form:"last_name"`
	Gender     *string `json:"gender" form:"gender"`
	Year       *string `json:"year" form:"year"`
}

// CandidateResponse salida de un candidato.
type CandidateResponse struct {
	ID         string    `json:"id"`
	Level      string    `json:"level"`
	Position   string    `json:"position"`
	PartyList  string    `json:"party_list"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Gender     string    `json:"gender"`
	Year       string    `json:"year"`
	PhotoPath  string    `json:"photo_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
