package entity

import "time"

// Admin es la cuenta administrativa que gestiona padrón, candidatos y el
// interruptor de votación.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
