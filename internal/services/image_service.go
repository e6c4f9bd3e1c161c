package services

import (
	"log"

	"gallery/internal/apperror"
	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ImageService handles business logic for the image catalog: the
// author-joined read view, creation, and renames.
type ImageService struct {
	imageRepo repositories.ImageRepository
	userRepo  repositories.UserRepository
	mqClient  *rabbitmq.Client // optional, may be nil
}

// NewImageService creates a new ImageService.
func NewImageService(imageRepo repositories.ImageRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		userRepo:  userRepo,
		mqClient:  mqClient,
	}
}

// List returns the denormalized image views, optionally filtered by a
// case-insensitive substring match on the display name. Every image's author
// reference is resolved against the profile store; an image whose author is
// missing means the two stores disagree, which is surfaced as an integrity
// error rather than the image silently vanishing from the result.
func (s *ImageService) List(search string) ([]models.ImageView, error) {
	images, err := s.imageRepo.Search(search)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return []models.ImageView{}, nil
	}

	seen := make(map[string]bool)
	usernames := make([]string, 0, len(images))
	for _, img := range images {
		if !seen[img.AuthorID] {
			seen[img.AuthorID] = true
			usernames = append(usernames, img.AuthorID)
		}
	}

	users, err := s.userRepo.FindByUsernames(usernames)
	if err != nil {
		return nil, err
	}
	byUsername := make(map[string]models.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	views := make([]models.ImageView, 0, len(images))
	for _, img := range images {
		author, ok := byUsername[img.AuthorID]
		if !ok {
			return nil, apperror.Newf(apperror.Integrity, "image %s references unknown author %q", img.ID, img.AuthorID)
		}
		views = append(views, models.ImageView{
			ID:   img.ID,
			Src:  img.Src,
			Name: img.Name,
			Author: models.ImageAuthor{
				ID:       author.Username,
				Username: author.Username,
			},
		})
	}
	return views, nil
}

// Create inserts a new image record. The author must be the identity the
// access gate bound to the request; client-supplied author fields are never
// trusted for this.
func (s *ImageService) Create(src, name, author string) (*models.Image, error) {
	image := &models.Image{
		ID:       uuid.New().String(),
		Src:      src,
		Name:     name,
		AuthorID: author,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		if err := s.mqClient.Publish("image.created", map[string]interface{}{
			"imageID": image.ID,
			"author":  author,
			"name":    name,
		}); err != nil {
			log.Printf("Warning: failed to publish image.created event for image %s: %v", image.ID, err)
		}
	}
	return image, nil
}

// Rename updates an image's display name in place and returns the matched
// count. A malformed id fails distinctly from an absent one, so callers can
// answer "bad id" and "not found" differently. Name length is the HTTP
// boundary's concern; the store does not re-validate it.
func (s *ImageService) Rename(id, name string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, apperror.New(apperror.Validation, "invalid image id", err)
	}
	return s.imageRepo.UpdateName(id, name)
}
