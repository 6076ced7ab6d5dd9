package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Ruta de votación.
	ErrVotingClosed            = errors.New("la votación está cerrada")
	ErrSessionInvalid          = errors.New("sesión inválida: el votante ya no existe en el padrón")
	ErrEligibilityUndetermined = errors.New("no se pudo determinar el nivel del votante")
	ErrCandidateNotFound       = errors.New("candidato no encontrado")
	ErrCrossLevelVote          = errors.New("no se puede votar por un candidato de otro nivel")
	ErrMalformedCandidate      = errors.New("el candidato no tiene cargo asignado")
	ErrDuplicateVote           = errors.New("ya existe un voto para este cargo")

	// Ruta de importación y padrón.
	ErrInvalidLevel    = errors.New("nivel inválido")
	ErrVoterExists     = errors.New("el votante ya existe para este nivel")
	ErrAdminExists     = errors.New("el usuario administrador ya existe")
	ErrMissingPassword = errors.New("password requerido")
)
