//go:build unit

package user_test

import (
	"strings"
	"testing"

	"bookswap/internal/domain/user"
	"bookswap/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("reader@example.com")
		username, _ := user.NewUsername("reader")
		expected := user.NewUser(email, username, "hashed_password")

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("someone@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", user.MinUsernameLength)) },
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", user.MaxUsernameLength)) },
			},
			{
				name:   "too short",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", user.MaxUsernameLength+1)) },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("   ") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", pw.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
