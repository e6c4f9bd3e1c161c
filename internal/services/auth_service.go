package services

import (
	"log"

	"gallery/internal/apperror"
	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login against the credential store.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	mqClient *rabbitmq.Client // optional, may be nil
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, mqClient *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mqClient: mqClient,
	}
}

// Register creates a new user: bcrypt-hashes the password and inserts the
// credential together with its profile record. A taken username fails with a
// conflict and writes nothing.
func (s *AuthService) Register(username, email, password string) error {
	_, err := s.userRepo.GetCredential(username)
	if err == nil {
		return apperror.Newf(apperror.Conflict, "username '%s' already taken", username)
	}
	if !apperror.IsKind(err, apperror.NotFound) {
		// Storage failure, not "free to register". Callers must be able to
		// tell the two apart.
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.New(apperror.Infrastructure, "failed to hash password", err)
	}

	user := &models.User{Username: username, Email: email}
	cred := &models.Credential{Username: username, Password: string(hashedPassword)}
	if err := s.userRepo.Register(user, cred); err != nil {
		return err
	}

	if s.mqClient != nil {
		if err := s.mqClient.Publish("user.registered", map[string]interface{}{
			"username": username,
		}); err != nil {
			log.Printf("Warning: failed to publish user.registered event for %s: %v", username, err)
		}
	}
	return nil
}

// Login verifies the credentials and returns a signed token. An unknown
// username and a wrong password produce the same error so account existence
// is never leaked.
func (s *AuthService) Login(username, password string) (string, error) {
	cred, err := s.userRepo.GetCredential(username)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			return "", apperror.Newf(apperror.Auth, "invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)); err != nil {
		return "", apperror.Newf(apperror.Auth, "invalid credentials")
	}

	return s.tokens.Issue(username)
}
