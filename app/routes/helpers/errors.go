// Package helpers carries the small response and validation utilities shared
// by the route packages.
package helpers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/store"
)

// Validate is the process-wide validator instance.
var Validate = validator.New()

// Error maps a domain error onto an HTTP status and the standard error
// envelope. Every failure is surfaced to the caller with the underlying
// message; nothing is retried.
func Error(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, database.ErrInvalidTransition):
		code = fiber.StatusConflict
	case errors.Is(err, database.ErrNoSubjects):
		code = fiber.StatusBadRequest
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// BadRequest is the envelope for validation failures, rejected before any
// write happens.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
