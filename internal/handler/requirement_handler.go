package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"requirement-pool/internal/domain"
	"requirement-pool/internal/middleware"
	"requirement-pool/internal/service"
)

type RequirementHandler struct {
	requirementService service.RequirementService
}

func NewRequirementHandler(requirementService service.RequirementService) *RequirementHandler {
	return &RequirementHandler{requirementService: requirementService}
}

func (h *RequirementHandler) List(c *fiber.Ctx) error {
	requirements, err := h.requirementService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(requirements)
}

func (h *RequirementHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Requirement not found")
	}

	requirement, err := h.requirementService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(requirement)
}

type createRequirementRequest struct {
	Requirement domain.CreateRequirementInput `json:"requirement"`
	Username    string                        `json:"username"`
}

func (h *RequirementHandler) Create(c *fiber.Ctx) error {
	var body createRequirementRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	requirement, err := h.requirementService.Create(c.Context(), body.Username, body.Requirement)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(requirement)
}

type toggleLikeRequest struct {
	Username string `json:"username"`
}

func (h *RequirementHandler) ToggleLike(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Requirement not found")
	}

	var body toggleLikeRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	liked, err := h.requirementService.ToggleLike(c.Context(), id, body.Username)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isLiked": liked})
}

func (h *RequirementHandler) HasLiked(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// An unknown id simply has no like rows.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"isLiked": false})
	}

	liked, err := h.requirementService.HasLiked(c.Context(), id, c.Params("username"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isLiked": liked})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *RequirementHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Requirement not found")
	}

	var body updateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if body.Status == "" {
		return middleware.BadRequest("Status is required")
	}

	requirement, err := h.requirementService.UpdateStatus(c.Context(), id, body.Status)
	if err != nil {
		// The status-update path historically answers 400 for a missing
		// requirement, unlike the 404 used elsewhere. Existing clients
		// depend on it.
		if errors.Is(err, domain.ErrRequirementNotFound) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(requirement)
}

func (h *RequirementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Requirement not found")
	}

	if err := h.requirementService.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Requirement deleted successfully",
	})
}
