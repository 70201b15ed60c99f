package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrEmptyCatalog = errors.New("el catálogo está vacío")
)

// SchemaError indica que a una carga le faltan columnas obligatorias.
// Es fatal para toda la carga: no se procesa ninguna fila (validación todo-o-nada).
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("faltan columnas requeridas: %s", strings.Join(e.Missing, ", "))
}

// NewSchemaError construye el error con la lista exacta de columnas ausentes.
func NewSchemaError(missing ...string) *SchemaError {
	return &SchemaError{Missing: missing}
}

// AsSchemaError devuelve el *SchemaError envuelto en err, si lo hay.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	ok := errors.As(err, &se)
	return se, ok
}
