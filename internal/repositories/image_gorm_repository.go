package repositories

import (
	"errors"
	"strings"

	"gallery/internal/apperror"
	"gallery/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{
		db: db,
	}
}

// Search retrieves images from the database, optionally filtered by a
// case-insensitive substring match on the display name.
func (r *GORMImageRepository) Search(term string) ([]models.Image, error) {
	var images []models.Image
	q := r.db.Order("created_at, id")
	if term != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	if err := q.Find(&images).Error; err != nil {
		return nil, apperror.New(apperror.Infrastructure, "failed to search images", err)
	}
	return images, nil
}

// GetByID retrieves a single image by its ID.
func (r *GORMImageRepository) GetByID(id string) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.NotFound, "image with ID %s not found", id)
		}
		return nil, apperror.New(apperror.Infrastructure, "failed to get image", err)
	}
	return &image, nil
}

// Create inserts a new image record, generating an ID when none is set.
func (r *GORMImageRepository) Create(image *models.Image) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	if err := r.db.Create(image).Error; err != nil {
		return apperror.New(apperror.Infrastructure, "failed to create image", err)
	}
	return nil
}

// UpdateName updates only the name column of the matched image and reports
// how many records matched.
func (r *GORMImageRepository) UpdateName(id string, name string) (int64, error) {
	res := r.db.Model(&models.Image{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return 0, apperror.New(apperror.Infrastructure, "failed to update image name", res.Error)
	}
	return res.RowsAffected, nil
}
