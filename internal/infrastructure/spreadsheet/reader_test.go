package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/infrastructure/spreadsheet"
)

func TestReadRoster_CSV(t *testing.T) {
	csv := "School ID,Full Name,Year\n" +
		"2021-0001,Ana Reyes,Grade 11\n" +
		",,\n" + // fila vacía: se descarta
		"2021-0002,Luis Gómez,Grade 12\n"

	rows, err := spreadsheet.ReadRoster("padron.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2021-0001", rows[0]["School ID"])
	assert.Equal(t, "Ana Reyes", rows[0]["Full Name"])
	assert.Equal(t, "Grade 12", rows[1]["Year"])
}

// Planilla exportada en latin-1: los bytes no son UTF-8 válido y deben
// decodificarse desde ISO 8859-1 en vez de romperse.
func TestReadRoster_CSVLatin1(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("School ID,Full Name,Year\n")
	buf.WriteString("2021-0003,Jos")
	buf.WriteByte(0xE9) // 'é' en latin-1
	buf.WriteString(" Pe")
	buf.WriteByte(0xF1) // 'ñ' en latin-1
	buf.WriteString("a,Grade 11\n")

	rows, err := spreadsheet.ReadRoster("padron.csv", &buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "José Peña", rows[0]["Full Name"])
}

func TestReadRoster_CSVFilasIrregulares(t *testing.T) {
	// Filas con menos columnas que el encabezado: las faltantes quedan vacías.
	csv := "School ID,Full Name,Year\n2021-0004,Solo Nombre\n"

	rows, err := spreadsheet.ReadRoster("padron.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Solo Nombre", rows[0]["Full Name"])
	assert.Empty(t, rows[0]["Year"])
}

func TestReadRoster_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"ID Number", "Name", "Grade Level"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2021-0005", "Pia Cruz", "g11"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"2021-0006", "Noel Sy", "Grade 12"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := spreadsheet.ReadRoster("padron.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2021-0005", rows[0]["ID Number"])
	assert.Equal(t, "g11", rows[0]["Grade Level"])
	assert.Equal(t, "Noel Sy", rows[1]["Name"])
}

func TestReadRoster_FormatoNoSoportado(t *testing.T) {
	_, err := spreadsheet.ReadRoster("padron.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El .xls binario legado queda fuera: el mensaje guía al formato soportado.
func TestReadRoster_XLSLegado_Rechazado(t *testing.T) {
	_, err := spreadsheet.ReadRoster("padron.xls", strings.NewReader("x"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), ".xlsx o .csv")
}

func TestReadRoster_CSVVacio(t *testing.T) {
	_, err := spreadsheet.ReadRoster("padron.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
