package apperrors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyQuestion  = errors.New("se requiere una pregunta")
	ErrNoMatch        = errors.New("no se pudo identificar una consulta adecuada para esta pregunta")
	ErrUnsafeQuestion = errors.New("la pregunta contiene un patrón de inyección SQL")
)
