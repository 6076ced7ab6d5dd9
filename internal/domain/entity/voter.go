package entity

import "time"

// Niveles del padrón: partición superior de elegibilidad.
const (
	LevelElementary = "Elementary"
	LevelJHS        = "JHS"
	LevelSHS        = "SHS"
	LevelCollege    = "College"
)

// Levels lista los niveles canónicos en orden institucional.
var Levels = []string{LevelElementary, LevelJHS, LevelSHS, LevelCollege}

// IsLevel indica si s es exactamente un nivel canónico.
func IsLevel(s string) bool {
	for _, l := range Levels {
		if s == l {
			return true
		}
	}
	return false
}

// Estados de votación del votante (informativo; la verdad por cargo vive en votes).
const (
	StatusNotVoted = 0
	StatusVoted    = 1
)

// Voter representa una persona habilitada para votar.
// (SchoolID canónico, Level) es único en el padrón: el mismo school id puede
// reaparecer bajo otro nivel, nunca dos veces bajo el mismo.
type Voter struct {
	ID           string
	SchoolID     string
	FullName     string
	Course       string // curso/strand/programa, opcional
	Year         string // etiqueta canónica: "Grade N" / "Nth Year"
	Status       int    // 0 = no votó, 1 = votó (legado, informativo)
	Level        string
	PasswordHash string // bcrypt, puede estar vacío si el votante aún no tiene credencial
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
