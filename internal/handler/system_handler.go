package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"requirement-pool/internal/service"
)

type SystemHandler struct {
	requirementService service.RequirementService
	seedService        service.SeedService
}

func NewSystemHandler(requirementService service.RequirementService, seedService service.SeedService) *SystemHandler {
	return &SystemHandler{
		requirementService: requirementService,
		seedService:        seedService,
	}
}

func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Reset wipes the pool and reloads the sample data. Test/reset flows only.
func (h *SystemHandler) Reset(c *fiber.Ctx) error {
	if err := h.requirementService.ClearAll(c.Context()); err != nil {
		return err
	}
	if err := h.seedService.Seed(c.Context()); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Database reset and sample data initialized",
	})
}

func (h *SystemHandler) Init(c *fiber.Ctx) error {
	if err := h.seedService.SeedIfEmpty(c.Context()); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Sample data initialized",
	})
}
