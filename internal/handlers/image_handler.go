package handlers

import (
	"fmt"
	"strings"

	"gallery/internal/middleware"
	"gallery/internal/services"
	"gallery/internal/uploads"

	"github.com/gofiber/fiber/v2"
)

// MaxImageNameLength is the display name ceiling, enforced here at the HTTP
// boundary rather than in the store.
const MaxImageNameLength = 100

// ImageHandler handles HTTP requests for the image catalog.
type ImageHandler struct {
	imageService *services.ImageService
	store        *uploads.Store
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService *services.ImageService, store *uploads.Store) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		store:        store,
	}
}

// RegisterRoutes registers the image routes with the Fiber app. The router
// passed in is expected to already carry the auth gate.
func (h *ImageHandler) RegisterRoutes(router fiber.Router) {
	imageRoutes := router.Group("/images")
	imageRoutes.Get("/", h.HandleListImages)
	imageRoutes.Post("/", h.HandleCreateImage)
	imageRoutes.Patch("/:id", h.HandleRenameImage)
}

// HandleListImages returns the author-joined image views, optionally
// filtered by the search query parameter.
func (h *ImageHandler) HandleListImages(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))

	views, err := h.imageService.List(search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// RenameImageRequest represents the request body for a rename.
type RenameImageRequest struct {
	Name string `json:"name"`
}

// HandleRenameImage updates an image's display name.
func (h *ImageHandler) HandleRenameImage(c *fiber.Ctx) error {
	imageID := c.Params("id")

	var req RenameImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request body must have a string 'name' field",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request body must have a string 'name' field",
		})
	}
	if len(req.Name) > MaxImageNameLength {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": fmt.Sprintf("Image name exceeds %d characters", MaxImageNameLength),
		})
	}

	matched, err := h.imageService.Rename(imageID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	if matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Image does not exist",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCreateImage accepts a multipart upload (file + name), stores the
// binary through the upload collaborator, and records the image with the
// authenticated user as its author.
func (h *ImageHandler) HandleCreateImage(c *fiber.Ctx) error {
	username, ok := c.Locals(middleware.UsernameKey).(string)
	if !ok || username == "" {
		// The gate binds this before we run; a miss means the route was
		// wired without it.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing 'name' field",
		})
	}
	if len(name) > MaxImageNameLength {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": fmt.Sprintf("Image name exceeds %d characters", MaxImageNameLength),
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing 'file' upload",
		})
	}

	filename, err := h.store.Save(file)
	if err != nil {
		return respondError(c, err)
	}

	image, err := h.imageService.Create("/uploads/"+filename, name, username)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}
