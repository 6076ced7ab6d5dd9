package entity

import (
	"strings"
	"time"
)

// Cargos electivos.
const (
	PositionPresident      = "President"
	PositionVicePresident  = "Vice President"
	PositionSecretary      = "Secretary"
	PositionTreasurer      = "Treasurer"
	PositionAuditor        = "Auditor"
	PositionRepresentative = "Representative"
)

// Positions lista los cargos canónicos en orden jerárquico.
var Positions = []string{
	PositionPresident,
	PositionVicePresident,
	PositionSecretary,
	PositionTreasurer,
	PositionAuditor,
	PositionRepresentative,
}

// IsPosition indica si s es exactamente un cargo canónico.
func IsPosition(s string) bool {
	for _, p := range Positions {
		if s == p {
			return true
		}
	}
	return false
}

// Candidate representa un contendiente por un cargo dentro de un nivel.
type Candidate struct {
	ID         string
	Level      string
	Position   string
	PartyList  string
	FirstName  string
	MiddleName string // opcional
	LastName   string
	Gender     string // Male | Female
	Year       string // etiqueta descriptiva, ej. "1st Year", "Grade 11"
	PhotoPath  string // ruta relativa de la foto, opcional
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName arma el nombre completo omitiendo partes vacías.
func (c *Candidate) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
