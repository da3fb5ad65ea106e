package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermission_Valid(t *testing.T) {
	for _, p := range AllPermissions() {
		assert.True(t, p.Valid(), "built-in permission %q should be valid", p)
	}

	assert.False(t, Permission("superuser").Valid())
	assert.False(t, Permission("").Valid())
	assert.False(t, Permission("AI").Valid(), "tags are case-sensitive")
}

func TestParsePermissions(t *testing.T) {
	perms, err := ParsePermissions([]string{"users", "ai"})

	require.NoError(t, err)
	assert.Equal(t, []Permission{PermissionUsers, PermissionAI}, perms)
}

func TestParsePermissions_UnknownTag(t *testing.T) {
	_, err := ParsePermissions([]string{"users", "root"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "root")
}

func TestParsePermissions_Empty(t *testing.T) {
	perms, err := ParsePermissions(nil)

	require.NoError(t, err)
	assert.Empty(t, perms)
}

func TestHasPermission(t *testing.T) {
	tags := []string{"users", "plans"}

	assert.True(t, HasPermission(tags, PermissionUsers))
	assert.True(t, HasPermission(tags, PermissionPlans))
	assert.False(t, HasPermission(tags, PermissionAI))
	assert.False(t, HasPermission(nil, PermissionUsers))
}
