package seq

import (
	"fmt"

	"gorm.io/gorm"
)

// Generador de identificadores secuenciales con prefijo (CLI001, VEN003,
// DET0042...). Escanea el maximo sufijo numerico existente para el prefijo.
//
// NextID debe invocarse sobre la transaccion que luego hace el INSERT: el
// advisory lock por prefijo vive hasta el commit, asi dos generadores
// concurrentes para el mismo prefijo se serializan en vez de chocar.

func Format(prefix string, n, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

func suffixPattern(prefix string) string {
	return "^" + prefix + "[0-9]+$"
}

func NextID(tx *gorm.DB, table, column, prefix string, width int) (string, error) {
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", prefix).Error; err != nil {
		return "", err
	}

	// El LIKE acota por indice; la regex descarta sufijos no numericos
	// (un "CLI-TEMP" legado reventaria el CAST y con el la transaccion).
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX(CAST(SUBSTRING(%s FROM %d) AS INTEGER)), 0) FROM %s WHERE %s LIKE ? AND %s ~ ?`,
		column, len(prefix)+1, table, column, column,
	)

	var max int
	if err := tx.Raw(query, prefix+"%", suffixPattern(prefix)).Scan(&max).Error; err != nil {
		return "", err
	}

	return Format(prefix, max+1, width), nil
}
