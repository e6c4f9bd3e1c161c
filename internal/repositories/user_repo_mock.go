package repositories

import (
	"sync"

	"gallery/internal/apperror"
	"gallery/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository, used
// when the service runs without a database (DB_DRIVER=memory).
type MockUserRepository struct {
	users map[string]models.User
	creds map[string]models.Credential
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
		creds: make(map[string]models.Credential),
	}
}

// Register inserts the profile and credential under one lock, mirroring the
// transactional write of the GORM implementation.
func (r *MockUserRepository) Register(user *models.User, cred *models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.creds[cred.Username]; ok {
		return apperror.Newf(apperror.Conflict, "username '%s' already taken", cred.Username)
	}
	r.creds[cred.Username] = *cred
	r.users[user.Username] = *user
	return nil
}

// GetCredential returns the credential record for a username.
func (r *MockUserRepository) GetCredential(username string) (*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.creds[username]
	if !ok {
		return nil, apperror.Newf(apperror.NotFound, "no credential for username %s", username)
	}
	return &cred, nil
}

// GetByUsername returns a profile record by its username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, apperror.Newf(apperror.NotFound, "user with username %s not found", username)
	}
	return &user, nil
}

// FindByUsernames returns the profile records that exist for the given
// usernames.
func (r *MockUserRepository) FindByUsernames(usernames []string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(usernames))
	for _, name := range usernames {
		if user, ok := r.users[name]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}
