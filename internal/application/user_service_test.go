package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	"github.com/rizkyamp/go-store-api/pkg/blacklist"
	"github.com/rizkyamp/go-store-api/pkg/helpers"
)

func newUserService(repo *fakeUserRepo, ttl time.Duration) *UserService {
	return NewUserService(repo, helpers.NewJWTManager("test-secret", ttl), blacklist.New(), nil)
}

func TestUserService_Register_FixesRole(t *testing.T) {
	t.Parallel()

	svc := newUserService(&fakeUserRepo{}, time.Hour)

	admin, err := svc.RegisterAdmin("alice", "alice@example.com", "password123", entity.GenderFemale)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.ID)
	assert.NotEqual(t, "password123", admin.Password, "password must be stored hashed")

	viewer, err := svc.RegisterViewer("bob", "bob@example.com", "password123", entity.GenderMale)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, viewer.Role)
}

func TestUserService_Register_Conflicts(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	svc := newUserService(repo, time.Hour)

	_, err := svc.RegisterViewer("alice", "alice@example.com", "password123", entity.GenderFemale)
	require.NoError(t, err)

	_, err = svc.RegisterViewer("alice", "new@example.com", "password123", entity.GenderFemale)
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.RegisterAdmin("carol", "alice@example.com", "password123", entity.GenderFemale)
	assert.ErrorIs(t, err, ErrEmailExists)

	// no duplicate record was created either way
	assert.Len(t, repo.users, 1)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	svc := newUserService(repo, time.Hour)
	_, err := svc.RegisterAdmin("alice", "alice@example.com", "password123", entity.GenderFemale)
	require.NoError(t, err)

	token, u, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Name)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
}

func TestUserService_Login_Failures(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	svc := newUserService(repo, time.Hour)
	_, err := svc.RegisterViewer("alice", "alice@example.com", "password123", entity.GenderFemale)
	require.NoError(t, err)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestUserService_Login_SecretUnset(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	svc := NewUserService(repo, helpers.NewJWTManager("", time.Hour), blacklist.New(), nil)
	_, err := svc.RegisterViewer("alice", "alice@example.com", "password123", entity.GenderFemale)
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrSecretNotSet)
}

func TestUserService_Logout_RevokesUntilExpiry(t *testing.T) {
	t.Parallel()

	svc := newUserService(&fakeUserRepo{}, 100*time.Millisecond)
	_, err := svc.RegisterViewer("alice", "alice@example.com", "password123", entity.GenderFemale)
	require.NoError(t, err)

	token, _, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	svc.Logout(token)
	assert.True(t, svc.Blacklist.Has(token), "revoked immediately")

	// the entry disappears on its own once the token's expiry passes
	assert.Eventually(t, func() bool { return !svc.Blacklist.Has(token) }, 2*time.Second, 20*time.Millisecond)
}

func TestUserService_Logout_TokenWithoutExpiry(t *testing.T) {
	t.Parallel()

	svc := newUserService(&fakeUserRepo{}, time.Hour)

	// not even a decodable token; revocation still succeeds
	svc.Logout("opaque-garbage")
	assert.True(t, svc.Blacklist.Has("opaque-garbage"))
}

func TestUserService_EnsureDefaultAdmin(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	svc := newUserService(repo, time.Hour)

	require.NoError(t, svc.EnsureDefaultAdmin())
	require.Len(t, repo.users, 1)
	assert.Equal(t, entity.RoleAdmin, repo.users[0].Role)
	assert.Equal(t, "admin@example.com", repo.users[0].Email)

	// idempotent: the second startup finds the existing admin
	require.NoError(t, svc.EnsureDefaultAdmin())
	assert.Len(t, repo.users, 1)

	// the seeded account can log in with the fixed password
	_, _, err := svc.Login("admin@example.com", "securePassword123")
	assert.NoError(t, err)
}
