package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// NormalizeCredential convierte una credencial cruda en hash bcrypt.
// Es idempotente: si el valor ya es un hash bcrypt ("$2...") se devuelve tal
// cual, así ninguna ruta de escritura puede re-hashear por accidente. Toda
// escritura de credencial pasa por acá; no hay hooks implícitos al guardar.
func NormalizeCredential(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if strings.HasPrefix(raw, "$2") {
		return raw, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckCredential compara una credencial en texto contra su hash.
// Un hash vacío nunca valida (votante sin credencial asignada).
func CheckCredential(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
