package dto

import (
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP.
// Missing solo se llena para errores de esquema (SCHEMA): lista exacta de
// columnas requeridas ausentes en la carga.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing_columns,omitempty"`
}

// ParseDate interpreta una fecha de request en formato YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}
