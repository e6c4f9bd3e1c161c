package repositories

import (
	"errors"

	"gallery/internal/apperror"
	"gallery/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Register inserts the profile and credential rows inside a single
// transaction, so a partial failure can never leave a credential without a
// resolvable profile.
func (r *GORMUserRepository) Register(user *models.User, cred *models.Credential) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cred).Error; err != nil {
			return err
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return apperror.New(apperror.Infrastructure, "failed to register user", err)
	}
	return nil
}

// GetCredential retrieves the credential record for a username.
func (r *GORMUserRepository) GetCredential(username string) (*models.Credential, error) {
	var cred models.Credential
	if err := r.db.First(&cred, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.NotFound, "no credential for username %s", username)
		}
		return nil, apperror.New(apperror.Infrastructure, "failed to get credential", err)
	}
	return &cred, nil
}

// GetByUsername retrieves a profile record by its username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.NotFound, "user with username %s not found", username)
		}
		return nil, apperror.New(apperror.Infrastructure, "failed to get user", err)
	}
	return &user, nil
}

// FindByUsernames retrieves the profile records for a set of usernames in one
// query, for the catalog's author join. Absent usernames are simply missing
// from the result; the caller decides what that means.
func (r *GORMUserRepository) FindByUsernames(usernames []string) ([]models.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.Find(&users, "username IN ?", usernames).Error; err != nil {
		return nil, apperror.New(apperror.Infrastructure, "failed to find users", err)
	}
	return users, nil
}
