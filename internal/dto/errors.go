package dto

import "github.com/gofiber/fiber/v2"

// AppError is a client-visible failure. Message is safe to return to
// the caller as-is; anything that is not an AppError gets logged with
// full detail and surfaced as a generic 500.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrInvalidInput      = &AppError{Status: fiber.StatusBadRequest, Message: "invalid request data"}
	ErrInvalidPhase      = &AppError{Status: fiber.StatusBadRequest, Message: "invalid phase selection"}
	ErrInvalidMitigation = &AppError{Status: fiber.StatusBadRequest, Message: "invalid mitigation selection"}
	ErrNoActiveRound     = &AppError{Status: fiber.StatusConflict, Message: "no active log to validate"}
	ErrNoActivePhase     = &AppError{Status: fiber.StatusConflict, Message: "no active phase to validate mitigation"}
	ErrNoContent         = &AppError{Status: fiber.StatusInternalServerError, Message: "no logs available for difficulty level"}
)
