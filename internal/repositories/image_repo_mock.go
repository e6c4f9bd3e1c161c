package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"gallery/internal/apperror"
	"gallery/internal/models"

	"github.com/google/uuid"
)

// MockImageRepository is an in-memory implementation of ImageRepository.
type MockImageRepository struct {
	images map[string]models.Image
	mu     sync.RWMutex
}

// NewMockImageRepository creates a new instance of MockImageRepository.
func NewMockImageRepository() *MockImageRepository {
	return &MockImageRepository{
		images: make(map[string]models.Image),
	}
}

// Search returns images whose name contains term case-insensitively, in
// insertion order so repeated calls over an unchanged store agree.
func (r *MockImageRepository) Search(term string) ([]models.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	imageList := make([]models.Image, 0, len(r.images))
	for _, img := range r.images {
		if term == "" || strings.Contains(strings.ToLower(img.Name), needle) {
			imageList = append(imageList, img)
		}
	}
	sort.Slice(imageList, func(i, j int) bool {
		if !imageList[i].CreatedAt.Equal(imageList[j].CreatedAt) {
			return imageList[i].CreatedAt.Before(imageList[j].CreatedAt)
		}
		return imageList[i].ID < imageList[j].ID
	})
	return imageList, nil
}

// GetByID returns an image by its ID.
func (r *MockImageRepository) GetByID(id string) (*models.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.images[id]
	if !ok {
		return nil, apperror.Newf(apperror.NotFound, "image with ID %s not found", id)
	}
	return &img, nil
}

// Create adds a new image.
func (r *MockImageRepository) Create(image *models.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}
	image.UpdatedAt = time.Now()
	r.images[image.ID] = *image
	return nil
}

// UpdateName changes only the display name of the matched image.
func (r *MockImageRepository) UpdateName(id string, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	img, ok := r.images[id]
	if !ok {
		return 0, nil
	}
	img.Name = name
	img.UpdatedAt = time.Now()
	r.images[id] = img
	return 1, nil
}
