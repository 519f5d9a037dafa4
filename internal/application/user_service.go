package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	repo "github.com/rizkyamp/go-store-api/internal/domain/repository"
	"github.com/rizkyamp/go-store-api/pkg/blacklist"
	"github.com/rizkyamp/go-store-api/pkg/helpers"
)

// Error messages are part of the public API contract; clients of the
// original service match on these exact strings.
var (
	ErrUserExists        = errors.New("User already exists!")
	ErrEmailExists       = errors.New("Email already exists!")
	ErrUserNotFound      = errors.New("User not found!")
	ErrIncorrectPassword = errors.New("Incorrect password!")
	ErrSecretNotSet      = errors.New("JWT_SECRET is not defined!")
)

// Default admin account created on first startup when no admin exists.
const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "securePassword123"
)

// UserService owns registration, credential checks and the token
// lifecycle. The role of a new account is fixed by which operation runs,
// never by client input.
type UserService struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	Blacklist *blacklist.Registry
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, bl *blacklist.Registry, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Blacklist: bl, Logger: logger}
}

// RegisterAdmin creates an account with the Admin role.
func (s *UserService) RegisterAdmin(name, email, password string, gender entity.Gender) (*entity.User, error) {
	return s.register(name, email, password, gender, entity.RoleAdmin)
}

// RegisterViewer creates an account with the Viewer role.
func (s *UserService) RegisterViewer(name, email, password string, gender entity.Gender) (*entity.User, error) {
	return s.register(name, email, password, gender, entity.RoleViewer)
}

func (s *UserService) register(name, email, password string, gender entity.Gender, role entity.Role) (*entity.User, error) {
	existing, err := s.Repo.GetByName(name)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	existing, err = s.Repo.GetByEmail(email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Gender:   gender,
		Role:     role,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	}
	return u, nil
}

// Login checks credentials and issues a signed token embedding the
// user's id and role. Which of email or password was wrong is encoded in
// the error, matching the original behavior.
func (s *UserService) Login(email, password string) (string, *entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return "", nil, ErrUserNotFound
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", nil, ErrIncorrectPassword
	}
	if len(s.JWT.Secret) == 0 {
		return "", nil, ErrSecretNotSet
	}

	token, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Logout revokes the presented token. When the token decodes with an
// expiry claim the registry drops the entry on its own once that instant
// passes; otherwise the entry stays until restart. The token does not
// have to still be valid.
func (s *UserService) Logout(token string) {
	claims, err := s.JWT.DecodeUnverified(token)
	if err == nil && claims.ExpiresAt != nil {
		s.Blacklist.AddUntil(token, claims.ExpiresAt.Time)
		return
	}
	s.Blacklist.Add(token)
}

// EnsureDefaultAdmin seeds the fixed admin account at startup when no
// admin exists yet.
func (s *UserService) EnsureDefaultAdmin() error {
	existing, err := s.Repo.GetByRole(entity.RoleAdmin)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := helpers.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	admin := &entity.User{
		Name:     defaultAdminName,
		Email:    defaultAdminEmail,
		Password: hash,
		Gender:   entity.GenderMale,
		Role:     entity.RoleAdmin,
	}
	if err := s.Repo.Create(admin); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", admin.Email).Info("admin account initialized")
	}
	return nil
}
