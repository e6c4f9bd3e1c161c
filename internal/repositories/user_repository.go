package repositories

import "gallery/internal/models"

// UserRepository defines the interface for identity data access. It owns both
// the credential records and the profile records the catalog joins against.
type UserRepository interface {
	// Register inserts the profile and its credential as one unit of work.
	Register(user *models.User, cred *models.Credential) error
	GetCredential(username string) (*models.Credential, error)
	GetByUsername(username string) (*models.User, error)
	FindByUsernames(usernames []string) ([]models.User, error)
}
