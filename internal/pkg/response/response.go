package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the flat error shape every endpoint returns on failure.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the confirmation shape returned by delete endpoints.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON sends 200 OK with the payload as-is (entities and arrays ship raw).
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends 201 with the persisted record echoed back.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends 200 OK with a confirmation message.
func Message(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: msg})
}

// Error sends the given status with the flat error body.
func Error(c *fiber.Ctx, statusCode int, msg string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: msg})
}

// NotFound sends 404 with the flat error body.
func NotFound(c *fiber.Ctx, msg string) error {
	return Error(c, fiber.StatusNotFound, msg)
}

// BadRequest sends 400 with the validation detail.
func BadRequest(c *fiber.Ctx, msg string) error {
	return Error(c, fiber.StatusBadRequest, msg)
}

// Conflict sends 409 for unique-constraint violations.
func Conflict(c *fiber.Ctx, msg string) error {
	return Error(c, fiber.StatusConflict, msg)
}

// Internal sends 500 with a generic message; the caller logs the detail.
func Internal(c *fiber.Ctx, msg string) error {
	return Error(c, fiber.StatusInternalServerError, msg)
}
