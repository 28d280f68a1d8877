package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/models"
	"github.com/RohitValiveti/Fitness-Tracker/utils"
)

const sessionDuration = 24 * time.Hour

// AuthService owns credential verification and the session/update token
// lifecycle.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// SessionCredentials is the token triple returned on register, login, and
// session renewal.
type SessionCredentials struct {
	SessionToken      string
	SessionExpiration time.Time
	UpdateToken       string
}

func newSessionCredentials() (*SessionCredentials, error) {
	sessionToken, err := utils.GenerateToken()
	if err != nil {
		return nil, err
	}
	updateToken, err := utils.GenerateToken()
	if err != nil {
		return nil, err
	}
	return &SessionCredentials{
		SessionToken:      sessionToken,
		SessionExpiration: time.Now().Add(sessionDuration),
		UpdateToken:       updateToken,
	}, nil
}

// Register creates a user with a bcrypt password hash and an active
// session. A duplicate-key failure is retried once with fresh tokens; if
// it fails again the email itself is taken.
func (s *AuthService) Register(email, password string) (*models.User, *SessionCredentials, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		creds, err := newSessionCredentials()
		if err != nil {
			return nil, nil, err
		}

		user := models.User{
			Email:             email,
			PasswordHash:      hash,
			SessionToken:      &creds.SessionToken,
			UpdateToken:       &creds.UpdateToken,
			SessionExpiration: creds.SessionExpiration,
		}
		err = s.db.Create(&user).Error
		if err == nil {
			return &user, creds, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, err
		}
	}
	return nil, nil, ErrDuplicateEmail
}

// Login verifies credentials and returns the user's token triple. A fresh
// session is issued only when the user has no live one; otherwise the
// current triple is returned unchanged.
func (s *AuthService) Login(email, password string) (*models.User, *SessionCredentials, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoSuchEmail
		}
		return nil, nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, ErrWrongPassword
	}

	if user.SessionToken == nil || user.UpdateToken == nil || !time.Now().Before(user.SessionExpiration) {
		creds, err := newSessionCredentials()
		if err != nil {
			return nil, nil, err
		}
		err = s.db.Model(&user).Updates(map[string]interface{}{
			"session_token":      creds.SessionToken,
			"update_token":       creds.UpdateToken,
			"session_expiration": creds.SessionExpiration,
		}).Error
		if err != nil {
			return nil, nil, err
		}
		user.SessionToken = &creds.SessionToken
		user.UpdateToken = &creds.UpdateToken
		user.SessionExpiration = creds.SessionExpiration
		return &user, creds, nil
	}

	return &user, &SessionCredentials{
		SessionToken:      *user.SessionToken,
		SessionExpiration: user.SessionExpiration,
		UpdateToken:       *user.UpdateToken,
	}, nil
}

// GetUserBySessionToken resolves a bearer token to its user. Unknown and
// expired tokens fail identically.
func (s *AuthService) GetUserBySessionToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	var user models.User
	if err := s.db.Where("session_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !user.VerifySessionToken(token, time.Now()) {
		return nil, ErrUnauthenticated
	}
	return &user, nil
}

// RenewSession rotates both tokens and extends the expiration by a day.
// The update is guarded by the old update token value, so of two
// concurrent renewals exactly one wins; the loser sees RowsAffected == 0
// and fails as unauthenticated. The old session token is dead either way.
func (s *AuthService) RenewSession(updateToken string) (*models.User, *SessionCredentials, error) {
	if updateToken == "" {
		return nil, nil, ErrUnauthenticated
	}

	creds, err := newSessionCredentials()
	if err != nil {
		return nil, nil, err
	}

	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("update_token = ?", updateToken).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnauthenticated
			}
			return err
		}

		res := tx.Model(&models.User{}).
			Where("id = ? AND update_token = ?", user.ID, updateToken).
			Updates(map[string]interface{}{
				"session_token":      creds.SessionToken,
				"update_token":       creds.UpdateToken,
				"session_expiration": creds.SessionExpiration,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrUnauthenticated
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	user.SessionToken = &creds.SessionToken
	user.UpdateToken = &creds.UpdateToken
	user.SessionExpiration = creds.SessionExpiration
	return &user, creds, nil
}

// Logout revokes the user's session. Both tokens become NULL and the
// expiration is moved to now, so neither token can be presented again
// until a new session is issued.
func (s *AuthService) Logout(user *models.User) error {
	err := s.db.Model(user).Updates(map[string]interface{}{
		"session_token":      nil,
		"update_token":       nil,
		"session_expiration": time.Now(),
	}).Error
	if err != nil {
		return err
	}
	user.SessionToken = nil
	user.UpdateToken = nil
	return nil
}
