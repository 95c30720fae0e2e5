package csvexport

import (
	"encoding/csv"
	"io"
)

// Fila con orden de columnas estable; la cabecera sale de las columnas
// de la primera fila.
type Row struct {
	Columns []string
	Values  []string
}

// Write emite el CSV con comillas dobladas para campos con coma, comilla
// o salto de linea. Sin filas no se emite nada, ni siquiera cabecera.
func Write(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rows[0].Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Values); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
