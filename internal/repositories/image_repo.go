package repositories

import "gallery/internal/models"

// ImageRepository defines the interface for image catalog data access.
type ImageRepository interface {
	// Search returns images whose name contains term case-insensitively.
	// An empty term returns every image. Order is stable for a fixed store
	// state.
	Search(term string) ([]models.Image, error)
	GetByID(id string) (*models.Image, error)
	Create(image *models.Image) error
	// UpdateName changes only the display name and returns how many records
	// matched the id (0 or 1), so callers can tell "no such image" from
	// success without a second lookup.
	UpdateName(id string, name string) (int64, error)
	// No Delete: images are never removed in this design.
}
