package handlers

import (
	"errors"

	"github.com/Dexter3110/bole-to-connect/internal/dto"
	"github.com/Dexter3110/bole-to-connect/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MotivationHandler struct {
	motivationService *services.MotivationService
}

func NewMotivationHandler(motivationService *services.MotivationService) *MotivationHandler {
	return &MotivationHandler{motivationService: motivationService}
}

func (h *MotivationHandler) Get(c *fiber.Ctx) error {
	msg, err := h.motivationService.Current()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	if msg == nil {
		return c.JSON(dto.MotivationResponse{})
	}
	return c.JSON(dto.MotivationResponse{
		Message:   &msg.Message,
		PostedBy:  &msg.PostedBy,
		ExpiresAt: &msg.ExpiresAt,
	})
}

func (h *MotivationHandler) Post(c *fiber.Ctx) error {
	var req dto.PostMotivationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	msg, err := h.motivationService.Post(req.UserID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized access",
			})
		}
		if errors.Is(err, services.ErrMessageRequired) ||
			errors.Is(err, services.ErrMessageTooLong) ||
			errors.Is(err, services.ErrMessageFlagged) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MotivationResponse{
		Message:   &msg.Message,
		PostedBy:  &msg.PostedBy,
		ExpiresAt: &msg.ExpiresAt,
	})
}

func (h *MotivationHandler) Clear(c *fiber.Ctx) error {
	actorID, _ := uuid.Parse(c.Query("user_id"))

	if err := h.motivationService.Clear(actorID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized access",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Message cleared"})
}
