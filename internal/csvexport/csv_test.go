package csvexport

import (
	"bytes"
	"testing"
)

func TestWriteSinFilas(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("salida = %q, want vacia", buf.String())
	}
}

func TestWriteConCabecera(t *testing.T) {
	rows := []Row{
		{Columns: []string{"VentaID", "Cliente", "MontoTotal"}, Values: []string{"VEN001", "Juan Perez", "300.00"}},
		{Columns: []string{"VentaID", "Cliente", "MontoTotal"}, Values: []string{"VEN002", "Ana Lopez", "85.50"}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := "VentaID,Cliente,MontoTotal\nVEN001,Juan Perez,300.00\nVEN002,Ana Lopez,85.50\n"
	if buf.String() != want {
		t.Errorf("salida:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteEscapaComillasYComas(t *testing.T) {
	rows := []Row{
		{Columns: []string{"Cliente", "Nota"}, Values: []string{`Juan "El Rapido" Perez`, "corte, barba"}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := "Cliente,Nota\n\"Juan \"\"El Rapido\"\" Perez\",\"corte, barba\"\n"
	if buf.String() != want {
		t.Errorf("salida:\n%q\nwant:\n%q", buf.String(), want)
	}
}
