package transactions

import (
	"errors"
	"strconv"

	"finboard-backend/internal/pkg/response"
	"finboard-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Handlers struct {
	Service *Service
}

// GET /api/transactions
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching transactions")
		return response.Internal(c, "Failed to fetch transactions")
	}
	return response.JSON(c, out)
}

// GET /api/transactions/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}
	t, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		log.Error().Err(err).Msg("Error fetching transaction")
		return response.Internal(c, "Failed to fetch transaction")
	}
	return response.JSON(c, t)
}

// GET /api/transactions/user/:userId
func (h *Handlers) ListByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}
	out, err := h.Service.ListByUser(c.Context(), uint(userID))
	if err != nil {
		log.Error().Err(err).Msg("Error fetching user transactions")
		return response.Internal(c, "Failed to fetch user transactions")
	}
	return response.JSON(c, out)
}

// POST /api/transactions
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in CreateTransactionInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	t, err := h.Service.Create(c.Context(), in)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return response.BadRequest(c, ve.Detail)
		}
		log.Error().Err(err).Msg("Error creating transaction")
		return response.Internal(c, "Failed to create transaction")
	}
	return response.Created(c, t)
}

// PUT /api/transactions/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}
	var in UpdateTransactionInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	t, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			return response.BadRequest(c, ve.Detail)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.NotFound(c, "Transaction not found")
		default:
			log.Error().Err(err).Msg("Error updating transaction")
			return response.Internal(c, "Failed to update transaction")
		}
	}
	return response.JSON(c, t)
}

// DELETE /api/transactions/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		log.Error().Err(err).Msg("Error deleting transaction")
		return response.Internal(c, "Failed to delete transaction")
	}
	return response.Message(c, "Transaction deleted successfully")
}
