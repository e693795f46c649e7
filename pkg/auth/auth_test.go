package auth_test

import (
	"testing"
	"time"

	"go-onboarding-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, auth.CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, auth.CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, auth.ValidatePassword("seven77"))
	assert.NoError(t, auth.ValidatePassword("eight888"))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("user1", "dana@example.com", "employee", "secret", time.Hour)
	assert.NoError(t, err)

	claims, err := auth.ParseToken(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		_, err := auth.ParseToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		expired, err := auth.GenerateToken("user1", "dana@example.com", "employee", "secret", -time.Minute)
		assert.NoError(t, err)
		_, err = auth.ParseToken(expired, "secret")
		assert.Error(t, err)
	})
}

func TestCapabilities(t *testing.T) {
	cases := []struct {
		role    string
		cap     auth.Capability
		allowed bool
	}{
		{auth.RoleHR, auth.CapUserCreate, true},
		{auth.RoleSupervisor, auth.CapUserCreate, false},
		{auth.RoleManager, auth.CapUserList, true},
		{auth.RoleEmployee, auth.CapUserList, false},
		{auth.RoleEmployee, auth.CapProgressRead, true},
		{auth.RoleEmployee, auth.CapProgressUpdate, false},
		{auth.RoleSupervisor, auth.CapProgressUpdate, true},
		{auth.RoleManager, auth.CapProgressUpdate, false},
		{auth.RoleHR, auth.CapTemplateManage, true},
		{auth.RoleManager, auth.CapTemplateManage, false},
		{auth.RoleHR, auth.CapTemplateApply, true},
		{"", auth.CapProgressRead, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, auth.Allowed(tc.role, tc.cap),
			"role=%q cap=%s", tc.role, tc.cap)
	}
}

func TestAllowedOrSelf(t *testing.T) {
	t.Run("Self access always passes", func(t *testing.T) {
		assert.True(t, auth.AllowedOrSelf(auth.RoleEmployee, "user1", "user1", auth.CapTaskList))
	})

	t.Run("Non-self falls back to the role table", func(t *testing.T) {
		assert.False(t, auth.AllowedOrSelf(auth.RoleEmployee, "user1", "user2", auth.CapTaskList))
		assert.True(t, auth.AllowedOrSelf(auth.RoleSupervisor, "sup1", "user2", auth.CapTaskList))
	})

	t.Run("Empty caller never matches as self", func(t *testing.T) {
		assert.False(t, auth.AllowedOrSelf(auth.RoleEmployee, "", "", auth.CapTaskList))
	})
}
