package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"requirement-pool/internal/domain"
	"requirement-pool/internal/middleware"
	"requirement-pool/internal/service"
)

type SuggestionHandler struct {
	requirementService service.RequirementService
}

func NewSuggestionHandler(requirementService service.RequirementService) *SuggestionHandler {
	return &SuggestionHandler{requirementService: requirementService}
}

func (h *SuggestionHandler) Create(c *fiber.Ctx) error {
	requirementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Requirement not found")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	suggestion, err := h.requirementService.AddSuggestion(c.Context(), requirementID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(suggestion)
}

func (h *SuggestionHandler) Delete(c *fiber.Ctx) error {
	suggestionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Suggestion not found")
	}

	if err := h.requirementService.DeleteSuggestion(c.Context(), suggestionID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Suggestion deleted successfully",
	})
}
