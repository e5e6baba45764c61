package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"requirement-pool/internal/domain"
	"requirement-pool/internal/middleware"
	"requirement-pool/internal/service"
)

const (
	maxUploadFiles    = 5
	maxUploadFileSize = 5 * 1024 * 1024
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadImages stores up to five images and returns their public URLs. The
// requirement service never sees file content, only the URL strings the
// client passes back on creation.
func (h *MediaHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.BadRequest("Invalid multipart form")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return middleware.BadRequest("No files uploaded")
	}
	if len(files) > maxUploadFiles {
		return middleware.BadRequest("At most 5 images per upload")
	}

	uploaded := make([]domain.UploadedImage, 0, len(files))
	for _, file := range files {
		if file.Size > maxUploadFileSize {
			return middleware.BadRequest("Each image must be smaller than 5MB")
		}

		mimeType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") {
			return middleware.BadRequest("Only image files are allowed")
		}

		reader, err := file.Open()
		if err != nil {
			return middleware.BadRequest("Failed to read file")
		}

		image, err := h.mediaService.UploadImage(c.Context(), file.Filename, file.Size, mimeType, reader)
		reader.Close()
		if err != nil {
			return err
		}

		uploaded = append(uploaded, *image)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"files":   uploaded,
	})
}
