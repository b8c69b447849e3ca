package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetUserByEmail(t *testing.T) {
	query := regexp.QuoteMeta("SELECT id, name, email, password FROM users WHERE email = $1")
	columns := []string{"id", "name", "email", "password"}

	t.Run("usuário encontrado", func(t *testing.T) {
		mock, _, _, repo := newMockDB(t)

		mock.ExpectQuery(query).
			WithArgs("user@nextmail.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("u1", "User", "user@nextmail.com", "$2a$10$hash"))

		user, err := repo.GetUserByEmail(context.Background(), "user@nextmail.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("email não cadastrado", func(t *testing.T) {
		mock, _, _, repo := newMockDB(t)

		mock.ExpectQuery(query).WithArgs("nobody@nextmail.com").WillReturnRows(sqlmock.NewRows(columns))

		user, err := repo.GetUserByEmail(context.Background(), "nobody@nextmail.com")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("falha de leitura vira ErrFetchUser", func(t *testing.T) {
		mock, _, _, repo := newMockDB(t)

		mock.ExpectQuery(query).WithArgs("user@nextmail.com").WillReturnError(errors.New("connection refused"))

		user, err := repo.GetUserByEmail(context.Background(), "user@nextmail.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrFetchUser)
		assert.Equal(t, "failed to fetch user", err.Error())
	})
}
