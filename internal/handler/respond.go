package handler

import (
	"errors"

	"inspeksi-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// errorResponse memetakan taksonomi error ke kode HTTP. Conflict (409)
// sengaja dibedakan dari 400 supaya klien tahu harus muat ulang, bukan
// memperbaiki input.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrDependency):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
