package rest

import (
	"database/sql"
	"errors"
	"smart-home-api/db"

	"github.com/gofiber/fiber/v2"
)

func ReturnBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnConflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnInternalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}

// ReturnStorageError maps a data access failure to its HTTP response:
// missing rows to 404, constraint faults to 409, everything else to
// 500 with the fault's description.
func ReturnStorageError(c *fiber.Ctx, err error, notFoundMessage string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ReturnNotFound(c, notFoundMessage)
	}
	if db.IsConstraintViolation(err) {
		return ReturnConflict(c, err.Error())
	}
	return ReturnInternalError(c, err.Error())
}
