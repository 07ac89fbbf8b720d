package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmailNoVerificado  = errors.New("el email no está verificado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrSlugEnUso          = errors.New("el slug ya está en uso")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTransicionInvalida = errors.New("la organización no está pendiente de revisión")
	ErrMotivoRequerido    = errors.New("debes proporcionar un motivo para el rechazo")
	ErrMiembroHuerfano    = errors.New("organización creada sin administrador: la compensación también falló")
)
