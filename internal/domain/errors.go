package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol no válido")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidRegisterKey = errors.New("clave de registro incorrecta")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya existe")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSelfAction         = errors.New("operación sobre el propio usuario no permitida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
