package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pavlenkodm/movie-stats/internal/logger"
	"github.com/pavlenkodm/movie-stats/internal/models"
	"github.com/pavlenkodm/movie-stats/internal/storage"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) error
}

// JWTGenerator defines an interface for issuing session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, uid int64, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password. The email
// must already be normalized by the caller. Returns
// ErrEmailAlreadyExists when the email is taken, including the case
// where a concurrent registration wins the insert race.
func (svc *AuthService) Register(ctx context.Context, email, password, username string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		return ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		if storage.IsDuplicateKey(err) {
			return ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user by email and password and returns a
// session token. Unknown email and wrong password are reported with
// distinct sentinels; handlers collapse both into one response.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
