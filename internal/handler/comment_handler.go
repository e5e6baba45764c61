package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"requirement-pool/internal/domain"
	"requirement-pool/internal/middleware"
	"requirement-pool/internal/service"
)

type CommentHandler struct {
	requirementService service.RequirementService
}

func NewCommentHandler(requirementService service.RequirementService) *CommentHandler {
	return &CommentHandler{requirementService: requirementService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	requirementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Requirement not found")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	comment, err := h.requirementService.AddComment(c.Context(), requirementID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Comment not found")
	}

	if err := h.requirementService.DeleteComment(c.Context(), commentID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Comment deleted successfully",
	})
}
