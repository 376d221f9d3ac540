package validation

import (
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

const minPasswordLength = 6

type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// User normalizes and validates a user payload. The email is lowercased so
// the email uniqueness index is effectively case-insensitive. The password
// leaves this function as plaintext; hashing happens in the service layer.
func User(in UserInput) (*domain.User, string, error) {
	ve := &apperr.ValidationError{}

	if checkRequired(ve, "name", in.Name) {
		checkLength(ve, "name", strings.TrimSpace(in.Name), 2, 100)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if checkRequired(ve, "email", email) {
		checkEmail(ve, "email", email)
	}

	Password(ve, in.Password)

	role := domain.UserRole(strings.TrimSpace(in.Role))
	if role == "" {
		role = domain.UserRoleUser
	}
	if !role.Valid() {
		addInvalidEnum(ve, "role", string(role), []string{
			string(domain.UserRoleUser),
			string(domain.UserRoleAdmin),
			string(domain.UserRoleSuperAdmin),
		})
	}

	if ve.HasErrors() {
		return nil, "", ve
	}

	return &domain.User{
		Name:  strings.TrimSpace(in.Name),
		Email: email,
		Role:  role,
	}, in.Password, nil
}

// Password applies the password length rule. It is shared by signup,
// change-password and reset-password.
func Password(ve *apperr.ValidationError, password string) {
	if password == "" {
		checkRequired(ve, "password", password)
		return
	}
	if len(password) < minPasswordLength {
		ve.Add("password", "validation.password_too_short",
			"password must be at least 6 characters",
			map[string]any{"Min": minPasswordLength})
	}
}

// UserUpdateInput carries profile fields only; passwords change through the
// dedicated operation.
type UserUpdateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func UserUpdate(in UserUpdateInput) (*domain.User, error) {
	ve := &apperr.ValidationError{}

	if checkRequired(ve, "name", in.Name) {
		checkLength(ve, "name", strings.TrimSpace(in.Name), 2, 100)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if checkRequired(ve, "email", email) {
		checkEmail(ve, "email", email)
	}

	role := domain.UserRole(strings.TrimSpace(in.Role))
	if !role.Valid() {
		addInvalidEnum(ve, "role", string(role), []string{
			string(domain.UserRoleUser),
			string(domain.UserRoleAdmin),
			string(domain.UserRoleSuperAdmin),
		})
	}

	if ve.HasErrors() {
		return nil, ve
	}

	return &domain.User{
		Name:  strings.TrimSpace(in.Name),
		Email: email,
		Role:  role,
	}, nil
}
