package dto

import "time"

// CreateVoterRequest alta manual de un votante (password en texto, se hashea en use case).
type CreateVoterRequest struct {
	SchoolID string `json:"school_id" validate:"required,max=50"`
	FullName string `json:"full_name" validate:"required,max=150"`
	Course   string `json:"course" validate:"omitempty,max=120"`
	Year     string `json:"year" validate:"required"`
	Status   *int   `json:"status" validate:"omitempty,oneof=0 1"`
	Level    string `json:"level" validate:"required,oneof=Elementary JHS SHS College"`
	Password string `json:"password" validate:"required"`
}

// UpdateVoterRequest edición parcial: solo los campos presentes se tocan.
type UpdateVoterRequest struct {
	FullName *string `json:"full_name"`
	Course   *string `json:"course"`
	Year     *string `json:"year"`
	Status   *int    `json:"status"`
	Password string  `json:"password"`
}

// UpdateStatusRequest cambio rápido del flag de estado (0/1).
type UpdateStatusRequest struct {
	Status int `json:"status" validate:"oneof=0 1"`
}

// VoterResponse salida de un votante (nunca incluye el hash de credencial).
type VoterResponse struct {
	ID        string    `json:"id"`
	SchoolID  string    `json:"school_id"`
	FullName  string    `json:"full_name"`
	Course    string    `json:"course,omitempty"`
	Year      string    `json:"year"`
	Status    int       `json:"status"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
