package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

func TestUser(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		user, password, err := User(UserInput{
			Name:     "Admin",
			Email:    "Admin@Example.com",
			Password: "admin123",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.Equal(t, domain.UserRoleUser, user.Role)
		assert.Equal(t, "admin123", password)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, _, err := User(UserInput{Name: "Admin", Email: "a@b.co", Password: "abc"})
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "validation.password_too_short", ve.Fields[0].MessageID)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, _, err := User(UserInput{Name: "Admin", Email: "a@b.co", Password: "admin123", Role: "owner"})
		require.Error(t, err)
	})

	t.Run("CollectsAllFieldErrors", func(t *testing.T) {
		_, _, err := User(UserInput{Email: "not-an-email"})
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		names := fieldNames(ve)
		assert.Contains(t, names, "name")
		assert.Contains(t, names, "email")
		assert.Contains(t, names, "password")
	})
}

func TestUserUpdate(t *testing.T) {
	user, err := UserUpdate(UserUpdateInput{Name: "Staff", Email: "staff@example.com", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)

	_, err = UserUpdate(UserUpdateInput{Name: "Staff", Email: "staff@example.com", Role: ""})
	assert.Error(t, err)
}
