package service

import (
	"context"
	"testing"
	"whlin31/CarHub/internal/api/models"
	"whlin31/CarHub/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepository(testDB(t)))
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     "Jane",
		Email:    "Jane@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email, "email must be stored normalized")
	assert.NotEqual(t, "secret1", user.PasswordHash, "plaintext must never be stored")

	// Login with a differently-cased address resolves to the same account.
	got, err := svc.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "empty name",
			req:     models.RegisterRequest{Name: " ", Email: "a@b.com", Password: "pw"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "empty password",
			req:     models.RegisterRequest{Name: "A", Email: "a@b.com", Password: ""},
			wantErr: ErrMissingFields,
		},
		{
			name:    "no at sign",
			req:     models.RegisterRequest{Name: "A", Email: "nonsense", Password: "pw"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "one letter tld",
			req:     models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "pw"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "duplicate email",
			req:     models.RegisterRequest{Name: "B", Email: "jane@example.com", Password: "pw"},
			wantErr: ErrDuplicateEmail,
		},
		{
			name:    "duplicate email different case",
			req:     models.RegisterRequest{Name: "B", Email: "JANE@Example.COM", Password: "pw"},
			wantErr: ErrDuplicateEmail,
		},
		{
			name:    "duplicate email surrounding whitespace",
			req:     models.RegisterRequest{Name: "B", Email: "  jane@example.com ", Password: "pw"},
			wantErr: ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.Register(ctx, &models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)

	_, err = svc.Profile(ctx, "no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.Register(ctx, &models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	name := "Jane Doe"
	updated, err := svc.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email, "email must survive a name-only update")

	// Password update takes effect for the next login.
	password := "secret2"
	_, err = svc.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{Password: &password})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "secret2"})
	assert.NoError(t, err)
}

func TestUpdateProfileEmailChecks(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	other, err := svc.Register(ctx, &models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	taken := "Jane@Example.com"
	_, err = svc.UpdateProfile(ctx, other.ID, &models.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	bad := "not-an-email"
	_, err = svc.UpdateProfile(ctx, other.ID, &models.UpdateProfileRequest{Email: &bad})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	// Re-submitting your own address is not a duplicate.
	same := "BOB@example.com"
	updated, err := svc.UpdateProfile(ctx, other.ID, &models.UpdateProfileRequest{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", updated.Email)
}
