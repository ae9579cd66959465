//go:build unit

package user_test

import (
	"testing"

	"booking-console/internal/domain/user"
	"booking-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RegistrationBuilder)
	errIs  error
}

func TestRegistration(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewRegistrationBuilder().With(func(b *builder.RegistrationBuilder) {
			b.Username = "  alice  "
			b.FirstName = " Alice"
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "alice", actual.Username())
		assert.Equal(t, "Alice", actual.FirstName())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
		assert.Equal(t, "secret1", actual.Password().Value())
	})

	t.Run("必須項目", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "ユーザー名空NG", mutate: func(b *builder.RegistrationBuilder) { b.Username = "   " }, errIs: user.ErrMissingField},
			{name: "名空NG", mutate: func(b *builder.RegistrationBuilder) { b.FirstName = "" }, errIs: user.ErrMissingField},
			{name: "姓空NG", mutate: func(b *builder.RegistrationBuilder) { b.LastName = "" }, errIs: user.ErrMissingField},
			{name: "メール空NG", mutate: func(b *builder.RegistrationBuilder) { b.Email = " " }, errIs: user.ErrMissingField},
		})
	})

	t.Run("パスワード検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "6文字OK", mutate: func(b *builder.RegistrationBuilder) { b.WithPassword("abcdef", "abcdef") }},
			{name: "5文字NG", mutate: func(b *builder.RegistrationBuilder) { b.WithPassword("abcde", "abcde") }, errIs: user.ErrPasswordTooWeak},
			{name: "確認不一致NG", mutate: func(b *builder.RegistrationBuilder) { b.WithPassword("abcdef", "abcdeg") }, errIs: user.ErrPasswordsMismatch},
		})
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "有効なメールアドレスOK", mutate: func(b *builder.RegistrationBuilder) { b.Email = "valid@example.com" }},
			{name: "無効な形式NG", mutate: func(b *builder.RegistrationBuilder) { b.Email = "invalid-email" }, errIs: user.ErrInvalidEmail},
			{name: "@なしNG", mutate: func(b *builder.RegistrationBuilder) { b.Email = "invalidemail.com" }, errIs: user.ErrInvalidEmail},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewRegistrationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
