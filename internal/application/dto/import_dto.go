package dto

// RawRow es una fila cruda de la planilla: encabezado → valor, tal como llegó.
// El matching de encabezados (sinónimos, case-insensitive) lo hace el reconciliador.
type RawRow map[string]string

// RowSample una fila problemática para mostrar al operador.
// Row es 1-based y coincide con la fila de la planilla (la 1 es el encabezado).
type RowSample struct {
	Row      int    `json:"row"`
	SchoolID string `json:"school_id"`
	FullName string `json:"full_name"`
	Reason   string `json:"reason"`
}

// ImportReport resumen de una importación de padrón. La importación nunca
// falla por filas malas: las cuenta, guarda muestras y sigue.
type ImportReport struct {
	Level            string      `json:"level"`
	Inserted         int         `json:"inserted"`
	SkippedMissing   int         `json:"skipped_missing"`
	Invalid          int         `json:"invalid"`
	DuplicatesDB     int         `json:"duplicates_db"`
	DuplicatesFile   int         `json:"duplicates_file"`
	InvalidSamples   []RowSample `json:"invalid_samples"`
	DuplicateSamples []RowSample `json:"duplicate_samples"`
}
