// Package taxonomy canonicaliza las etiquetas de nivel y de año/grado que
// llegan como texto libre (planillas importadas, alta manual, registros ya
// almacenados). Es la única fuente de verdad de normalización: la importación
// y la emisión de votos validan contra exactamente las mismas reglas.
//
// El paquete es puro y sin estado (servicio de dominio).
package taxonomy

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
)

var (
	reElem    = regexp.MustCompile(`(^|[^a-z])(elem|elementary)([^a-z]|$)`)
	reJHS     = regexp.MustCompile(`(^|[^a-z])(jhs|junior\s*high)([^a-z]|$)`)
	reSHS     = regexp.MustCompile(`(^|[^a-z])(shs|senior\s*high)([^a-z]|$)`)
	reCollege = regexp.MustCompile(`college|coll\.?`)

	reGradeElem = regexp.MustCompile(`^(grade )?([1-6])(st|nd|rd|th)?$`)
	reGradeJHS  = regexp.MustCompile(`^(grade )?(7|8|9|10)(st|nd|rd|th)?$`)
	reG11       = regexp.MustCompile(`(^| )g?11(th)?( |$)|grade 11`)
	reG12       = regexp.MustCompile(`(^| )g?12(th)?( |$)|grade 12`)

	// Años de College con sinónimos en palabras.
	reCollegeYears = []*regexp.Regexp{
		regexp.MustCompile(`(^| )(1|1st|first|freshman)( |year|$)`),
		regexp.MustCompile(`(^| )(2|2nd|second|sophomore)( |year|$)`),
		regexp.MustCompile(`(^| )(3|3rd|third|junior)( |year|$)`),
		regexp.MustCompile(`(^| )(4|4th|fourth|senior)( |year|$)`),
		regexp.MustCompile(`(^| )(5|5th|fifth)( |year|$)`),
	}
	collegeYearLabels = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "5th Year"}

	// Valores con forma de SHS cargados bajo College: contaminación típica de captura.
	reCollegeLooksSHS = regexp.MustCompile(`grade 1[12]|(^| )g?1[12]( |$)`)

	schoolIDFolder = cases.Fold()
)

// ResolveLevel canonicaliza una etiqueta de nivel en texto libre.
// Acepta los cuatro tokens canónicos y abreviaturas comunes ("elem",
// "junior high", "senior high", "coll"). Devuelve ("", false) si no hay match.
func ResolveLevel(input string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(input))
	if d == "" {
		return "", false
	}
	switch {
	case reElem.MatchString(d):
		return entity.LevelElementary, true
	case reJHS.MatchString(d):
		return entity.LevelJHS, true
	case reSHS.MatchString(d):
		return entity.LevelSHS, true
	case reCollege.MatchString(d):
		return entity.LevelCollege, true
	}
	return "", false
}

// ResolveYearLabel canonicaliza la etiqueta de año/grado para un nivel dado.
// El rechazo devuelve un error con un motivo legible que repite el valor crudo.
func ResolveYearLabel(level, raw string) (string, error) {
	s0 := strings.TrimSpace(raw)
	s := strings.ToLower(s0)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), " ")

	switch level {
	case entity.LevelElementary:
		if m := reGradeElem.FindStringSubmatch(s); m != nil {
			return "Grade " + m[2], nil
		}
		return "", fmt.Errorf("Invalid for Elementary. Use Grade 1-6 (got %q).", s0)

	case entity.LevelJHS:
		if m := reGradeJHS.FindStringSubmatch(s); m != nil {
			return "Grade " + m[2], nil
		}
		return "", fmt.Errorf("Invalid for JHS. Use Grade 7-10 (got %q).", s0)

	case entity.LevelSHS:
		if reG11.MatchString(s) {
			return "Grade 11", nil
		}
		if reG12.MatchString(s) {
			return "Grade 12", nil
		}
		return "", fmt.Errorf("Invalid for SHS. Use Grade 11 or Grade 12 (got %q).", s0)

	case entity.LevelCollege:
		for i, re := range reCollegeYears {
			if re.MatchString(s) {
				return collegeYearLabels[i], nil
			}
		}
		// Error típico de captura: valores de SHS bajo College. No se coercen.
		if reCollegeLooksSHS.MatchString(s) {
			return "", fmt.Errorf("This record is not valid for College (got %q, looks like SHS).", s0)
		}
		return "", fmt.Errorf("Invalid for College. Use 1st-4th/5th Year (got %q).", s0)
	}

	return "", fmt.Errorf("Unknown level %q.", level)
}

// CanonicalSchoolID devuelve la forma canónica (case-insensitive) de un school id,
// usada como clave de identidad en todos los chequeos de duplicados.
func CanonicalSchoolID(id string) string {
	return schoolIDFolder.String(strings.TrimSpace(id))
}
