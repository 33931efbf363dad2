package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	u := h.register("alice")
	require.Positive(t, u.ID)
	require.True(t, u.IsActive)
	require.False(t, u.IsAdmin)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	_, err := h.accounts.Register(ctx, RegisterInput{
		Username: "alice", Password: "other", FirstName: "A", LastName: "B",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.accounts.Register(ctx, RegisterInput{
		Username: strings.Repeat("x", 33),
		Password: "",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "username")
	require.Contains(t, verr.Fields, "password")
	require.Contains(t, verr.Fields, "first_name")
	require.Equal(t, "is required", verr.Fields["password"])
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.register("alice")

	u, pair, err := h.accounts.Login(ctx, LoginInput{Username: " alice ", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, jwtx.TypeAccess, pair.Access.Type)
	require.NotNil(t, pair.Refresh)
	require.Equal(t, jwtx.TypeRefresh, pair.Refresh.Type)

	resp := pair.Response()
	require.Equal(t, "Bearer", resp.TokenType)
	require.EqualValues(t, 15*60, resp.ExpiresIn)
	require.Equal(t, pair.Refresh.Value, resp.RefreshToken)

	require.Equal(t, []string{jwtx.TypeAccess, jwtx.TypeRefresh}, h.metrics.issued)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.register("alice")
	h.register("bob")

	_, err := h.accounts.SetActive(ctx, "bob", false)
	require.NoError(t, err)

	for _, in := range []LoginInput{
		{Username: "nobody", Password: "secret"},
		{Username: "alice", Password: "wrong"},
		{Username: "bob", Password: "secret"},
		// Longer than registration allows, still just wrong.
		{Username: "alice", Password: strings.Repeat("p", 64)},
		{Username: strings.Repeat("a", 64), Password: "secret"},
	} {
		_, _, err := h.accounts.Login(ctx, in)
		require.ErrorIs(t, err, ErrInvalidCredentials, "user %q", in.Username)
	}
}

func TestLoginUpgradesBcrypt(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	legacy, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	id, err := h.store.Users().CreateUser(ctx, domain.User{
		Username:     "imported",
		FirstName:    "Old",
		LastName:     "Timer",
		PasswordHash: string(legacy),
		IsActive:     true,
	})
	require.NoError(t, err)

	_, _, err = h.accounts.Login(ctx, LoginInput{Username: "imported", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = h.accounts.Login(ctx, LoginInput{Username: "imported", Password: "hunter2"})
	require.NoError(t, err)

	u, err := h.store.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	// And the new hash keeps working.
	_, _, err = h.accounts.Login(ctx, LoginInput{Username: "imported", Password: "hunter2"})
	require.NoError(t, err)
}

func TestOperatorFlags(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.register("alice")

	u, err := h.accounts.SetAdmin(ctx, "alice", true)
	require.NoError(t, err)
	require.True(t, u.IsAdmin)

	u, err = h.accounts.SetActive(ctx, "alice", false)
	require.NoError(t, err)
	require.False(t, u.IsActive)

	users, err := h.accounts.ListActiveUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	_, err = h.accounts.SetAdmin(ctx, "nobody", true)
	require.ErrorIs(t, err, ErrUserNotFound)
}
