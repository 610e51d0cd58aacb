package users

import (
	"errors"
	"strconv"

	"finboard-backend/internal/pkg/response"
	"finboard-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Handlers struct {
	Service *Service
}

// GET /api/users
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching users")
		return response.Internal(c, "Failed to fetch users")
	}
	return response.JSON(c, out)
}

// GET /api/users/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}
	u, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		log.Error().Err(err).Msg("Error fetching user")
		return response.Internal(c, "Failed to fetch user")
	}
	return response.JSON(c, u)
}

// POST /api/users
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	u, err := h.Service.Create(c.Context(), in)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			return response.BadRequest(c, ve.Detail)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return response.Conflict(c, "Email already exists")
		default:
			log.Error().Err(err).Msg("Error creating user")
			return response.Internal(c, "Failed to create user")
		}
	}
	return response.Created(c, u)
}

// PUT /api/users/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}
	var in UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	u, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			return response.BadRequest(c, ve.Detail)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return response.Conflict(c, "Email already exists")
		default:
			log.Error().Err(err).Msg("Error updating user")
			return response.Internal(c, "Failed to update user")
		}
	}
	return response.JSON(c, u)
}

// DELETE /api/users/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		log.Error().Err(err).Msg("Error deleting user")
		return response.Internal(c, "Failed to delete user")
	}
	return response.Message(c, "User deleted successfully")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
