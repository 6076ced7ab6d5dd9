// Package spreadsheet lee planillas de padrón (xlsx y csv) y las convierte en
// filas crudas encabezado → valor, listas para la reconciliación.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
)

// ReadRoster lee una planilla completa. El formato se decide por extensión
// (.xlsx o .csv); la primera fila no vacía es el encabezado.
func ReadRoster(filename string, r io.Reader) ([]dto.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: formato no soportado %q (use .xlsx o .csv)", domain.ErrInvalidInput, filepath.Ext(filename))
	}
}

func readXLSX(r io.Reader) ([]dto.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return toRawRows(rows)
}

func readCSV(r io.Reader) ([]dto.RawRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	// Las planillas exportadas de Excel suelen venir en latin-1; si los bytes
	// no son UTF-8 válido se decodifican desde ISO 8859-1.
	if !utf8.Valid(raw) {
		raw, err = io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
		if err != nil {
			return nil, fmt.Errorf("decodificar csv: %w", err)
		}
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear csv: %w", err)
	}
	return toRawRows(records)
}

// toRawRows convierte la matriz en filas encabezado → valor. Las filas
// completamente vacías se descartan.
func toRawRows(rows [][]string) ([]dto.RawRow, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: la planilla está vacía", domain.ErrInvalidInput)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]dto.RawRow, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		row := make(dto.RawRow, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			var val string
			if i < len(rec) {
				val = strings.TrimSpace(rec[i])
			}
			if val != "" {
				empty = false
			}
			row[h] = val
		}
		if empty {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
