package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
	"github.com/postdeck/postdeck/internal/transfer"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) ListAnalytics(c *fiber.Ctx) error {
	records, err := h.s.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *AnalyticsHandler) ListAnalyticsBySchedule(c *fiber.Ctx) error {
	records, err := h.s.ListBySchedule(c.Context(), c.Params("scheduleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *AnalyticsHandler) ListAnalyticsByPlatform(c *fiber.Ctx) error {
	records, err := h.s.ListByPlatform(c.Context(), c.Params("platform"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *AnalyticsHandler) DashboardSummary(c *fiber.Ctx) error {
	summary, err := h.s.DashboardSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

func (h *AnalyticsHandler) CreateAnalytics(c *fiber.Ctx) error {
	var ac transfer.AnalyticsCreation
	if err := c.BodyParser(&ac); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	record, err := h.s.Create(c.Context(), &ac)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *AnalyticsHandler) UpdateAnalytics(c *fiber.Ctx) error {
	var au transfer.AnalyticsUpdate
	if err := c.BodyParser(&au); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	record, err := h.s.Update(c.Context(), c.Params("id"), &au)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(record)
}
