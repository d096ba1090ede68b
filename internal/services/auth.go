package services

import (
	"errors"

	"assetmgr/internal/config"
	"assetmgr/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	cfg      *config.Config
	hasher   PasswordHasher
	sessions SessionStore
}

func NewAuthService(cfg *config.Config, sessions SessionStore) *AuthService {
	return &AuthService{
		cfg:      cfg,
		hasher:   NewPasswordHasher(cfg),
		sessions: sessions,
	}
}

// Register creates a new user and issues a session. The first registrant in
// an empty system may self-assign any role, including admin; once an admin
// exists every new registration is forced to staff regardless of the
// requested role.
func (s *AuthService) Register(name, email, password string, requestedRole models.Role) (string, *models.User, error) {
	if !requestedRole.Valid() {
		return "", nil, ErrInvalidRole
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// The admin-exists check and the insert run in one transaction so two
	// simultaneous first registrations cannot both become admin.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", email).First(&existing).Error; err == nil {
			return ErrEmailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var adminCount int64
		if err := tx.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
			return err
		}

		if adminCount == 0 {
			user.Role = requestedRole
		} else {
			user.Role = models.RoleStaff
		}

		return tx.Create(user).Error
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login verifies credentials and issues a fresh session. Unknown email and
// wrong password return the same error.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := models.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(&user)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// Logout revokes the session. Idempotent.
func (s *AuthService) Logout(token string) {
	s.sessions.Revoke(token)
}

// Authenticate resolves a bearer token to the user's current database
// record. Expired sessions are evicted at detection time. The user is
// re-fetched by email on every call so role changes and deactivation take
// effect without re-login.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	session, ok := s.sessions.Resolve(token)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if session.Expired(timeNow()) {
		s.sessions.Revoke(token)
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := models.DB.Where("email = ?", session.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
