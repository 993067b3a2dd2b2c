//go:build unit

package user_test

import (
	"testing"

	"washdesk/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		for _, valid := range []string{"staff", "manager", "admin"} {
			role, err := user.NewRole(valid)
			assert.NoError(t, err)
			assert.Equal(t, valid, string(role))
		}

		for _, invalid := range []string{"", "root", "Staff", "ADMIN"} {
			_, err := user.NewRole(invalid)
			assert.ErrorIs(t, err, user.ErrInvalidRole, "role %q", invalid)
		}
	})

	t.Run("AtLeast follows staff < manager < admin", func(t *testing.T) {
		cases := []struct {
			role user.Role
			min  user.Role
			want bool
		}{
			{user.RoleStaff, user.RoleStaff, true},
			{user.RoleStaff, user.RoleManager, false},
			{user.RoleStaff, user.RoleAdmin, false},
			{user.RoleManager, user.RoleStaff, true},
			{user.RoleManager, user.RoleManager, true},
			{user.RoleManager, user.RoleAdmin, false},
			{user.RoleAdmin, user.RoleStaff, true},
			{user.RoleAdmin, user.RoleManager, true},
			{user.RoleAdmin, user.RoleAdmin, true},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.want, tc.role.AtLeast(tc.min), "%s AtLeast %s", tc.role, tc.min)
		}
	})
}

func TestEmail(t *testing.T) {
	t.Run("accepts normal addresses", func(t *testing.T) {
		for _, ok := range []string{"a@b.co", "staff+wash@example.com", "UPPER@EXAMPLE.COM"} {
			_, err := user.NewEmail(ok)
			assert.NoError(t, err, "email %q", ok)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, bad := range []string{"", "no-at-sign", "@missing-local.com", "trailing@"} {
			_, err := user.NewEmail(bad)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "email %q", bad)
		}
	})
}
