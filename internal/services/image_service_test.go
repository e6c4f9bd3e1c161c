package services_test

import (
	"testing"

	"gallery/internal/apperror"
	"gallery/internal/models"
	"gallery/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockImageRepository is a mock implementation of repositories.ImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Search(term string) ([]models.Image, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockImageRepository) GetByID(id string) (*models.Image, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageRepository) Create(image *models.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageRepository) UpdateName(id string, name string) (int64, error) {
	args := m.Called(id, name)
	return args.Get(0).(int64), args.Error(1)
}

func TestImageService_ListResolvesAuthors(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewImageService(mockImages, mockUsers, nil)

	images := []models.Image{
		{ID: "img-1", Src: "/uploads/a.png", Name: "Sunset", AuthorID: "alice"},
		{ID: "img-2", Src: "/uploads/b.jpg", Name: "Harbor", AuthorID: "bob"},
		{ID: "img-3", Src: "/uploads/c.jpg", Name: "Dunes", AuthorID: "alice"},
	}
	users := []models.User{
		{Username: "alice", Email: "alice@example.com"},
		{Username: "bob", Email: "bob@example.com"},
	}

	mockImages.On("Search", "").Return(images, nil).Once()
	mockUsers.On("FindByUsernames", []string{"alice", "bob"}).Return(users, nil).Once()

	views, err := service.List("")
	assert.NoError(t, err)
	assert.Len(t, views, 3)
	assert.Equal(t, "alice", views[0].Author.Username)
	assert.Equal(t, "bob", views[1].Author.Username)
	assert.Equal(t, "alice", views[2].Author.Username)
	assert.Equal(t, "img-1", views[0].ID)
	assert.Equal(t, "/uploads/a.png", views[0].Src)
	assert.Equal(t, "Sunset", views[0].Name)
	mockImages.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestImageService_ListUnresolvedAuthor(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewImageService(mockImages, mockUsers, nil)

	images := []models.Image{
		{ID: "img-1", Src: "/uploads/a.png", Name: "Sunset", AuthorID: "ghost"},
	}

	mockImages.On("Search", "").Return(images, nil).Once()
	mockUsers.On("FindByUsernames", []string{"ghost"}).Return([]models.User{}, nil).Once()

	// A missing author is a consistency bug between the stores; the image
	// must not be silently dropped.
	views, err := service.List("")
	assert.Error(t, err)
	assert.Nil(t, views)
	assert.True(t, apperror.IsKind(err, apperror.Integrity))
	assert.Contains(t, err.Error(), "ghost")
}

func TestImageService_ListPassesSearchTerm(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewImageService(mockImages, mockUsers, nil)

	mockImages.On("Search", "cat").Return([]models.Image{}, nil).Once()

	views, err := service.List("cat")
	assert.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
	mockImages.AssertExpectations(t)
	mockUsers.AssertNotCalled(t, "FindByUsernames", mock.Anything)
}

func TestImageService_Create(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewImageService(mockImages, mockUsers, nil)

	var created *models.Image
	mockImages.On("Create", mock.AnythingOfType("*models.Image")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Image)
		}).Return(nil).Once()

	image, err := service.Create("/uploads/abc.png", "Sunset", "alice")
	assert.NoError(t, err)
	assert.NotNil(t, image)
	assert.Equal(t, created, image)
	assert.Equal(t, "alice", image.AuthorID)
	assert.Equal(t, "Sunset", image.Name)
	assert.Equal(t, "/uploads/abc.png", image.Src)

	_, err = uuid.Parse(image.ID)
	assert.NoError(t, err)
	mockImages.AssertExpectations(t)
}

func TestImageService_Rename(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewImageService(mockImages, mockUsers, nil)

	id := uuid.New().String()

	// Existing image: one record matched.
	mockImages.On("UpdateName", id, "New").Return(int64(1), nil).Once()
	matched, err := service.Rename(id, "New")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	mockImages.AssertExpectations(t)

	// Well-formed but unknown id: zero matched, not an error.
	unknown := uuid.New().String()
	mockImages.On("UpdateName", unknown, "New").Return(int64(0), nil).Once()
	matched, err = service.Rename(unknown, "New")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), matched)
	mockImages.AssertExpectations(t)
}

func TestImageService_RenameBadID(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewImageService(mockImages, mockUsers, nil)

	// A malformed id is a caller error, distinguishable from "not found",
	// and never reaches the store.
	_, err := service.Rename("not-a-uuid", "New")
	assert.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.Validation))
	mockImages.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything)
}
