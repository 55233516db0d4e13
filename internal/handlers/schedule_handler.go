package handlers

import (
	"errors"

	"github.com/Dexter3110/bole-to-connect/internal/dto"
	"github.com/Dexter3110/bole-to-connect/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetUserRole never fails for unknown or malformed ids: those fall through
// to the employee default, matching the default-deny posture everywhere else.
func (h *ScheduleHandler) GetUserRole(c *fiber.Ctx) error {
	userID, _ := uuid.Parse(c.Params("user_id"))

	role, err := h.scheduleService.GetRole(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.JSON(dto.RoleResponse{Role: role})
}

func (h *ScheduleHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.scheduleService.Submit(req.UserID, req.Month, req.ScheduleData)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "user_id, month, and schedule_data are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitScheduleResponse{
		Message:  "Schedule submitted successfully!",
		Schedule: *created,
	})
}

func (h *ScheduleHandler) GetForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}
	month := c.Query("month")

	sched, err := h.scheduleService.FetchForUser(userID, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch schedule",
		})
	}

	return c.JSON(dto.FetchScheduleResponse{Schedule: *sched})
}

// AllEmployees serves the boss view. A missing or malformed boss_id resolves
// to the nil id, which the role check denies.
func (h *ScheduleHandler) AllEmployees(c *fiber.Ctx) error {
	bossID, _ := uuid.Parse(c.Query("boss_id"))

	rows, err := h.scheduleService.FetchAllForBoss(bossID)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized access",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.JSON(rows)
}

func (h *ScheduleHandler) Edit(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("schedule_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Schedule not found",
		})
	}

	var req dto.EditScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.scheduleService.Edit(scheduleID, req.BossID, req.ScheduleData); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized access",
			})
		}
		if errors.Is(err, services.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Schedule not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Schedule updated successfully!"})
}
