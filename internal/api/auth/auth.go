package auth

import (
	"context"
	"errors"

	"github.com/jon4hz/aitoolbox/internal/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for any failed login attempt. It is
// deliberately the same for an unknown identity and a wrong password, so
// the response never discloses whether the identifying field exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service validates credentials against the stored bcrypt hashes.
// Users authenticate by email, admins by username; the two identity
// spaces are fully separate.
type Service struct {
	db *database.Client
}

func New(db *database.Client) *Service {
	return &Service{db: db}
}

// HashPassword computes a salted one-way hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register creates a new user with a hashed password. A duplicate email
// surfaces as database.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, username, email, password string) (*database.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.db.CreateUser(ctx, username, email, hash)
}

// LoginUser validates a user's email/password pair.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*database.User, error) {
	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// LoginAdmin validates an admin's username/password pair.
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (*database.Admin, error) {
	admin, err := s.db.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
