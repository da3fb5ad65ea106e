package aiconfigs

import (
	"fmt"
	"testing"

	"codeberg.org/personachat/server/personachat/users"
	"github.com/stretchr/testify/assert"
)

func flagConfig(public, trial, requiresSub bool) AIConfig {
	return AIConfig{
		ID:                   fmt.Sprintf("cfg-%t-%t-%t", public, trial, requiresSub),
		OwnerID:              "owner-1",
		Name:                 "persona",
		ModelType:            "gemini",
		IsPublic:             public,
		IsTrialAllowed:       trial,
		RequiresSubscription: requiresSub,
	}
}

// every combination of the three flags, checked against each viewer
// class
func TestVisible_FlagCombinations(t *testing.T) {
	subscriber := &users.User{ID: "viewer-1"}
	freeUser := &users.User{ID: "viewer-1"}

	tests := []struct {
		public, trial, requiresSub bool
		guest                      bool
		free                       bool
		activeSub                  bool
	}{
		{false, false, false, false, false, false},
		{false, false, true, false, false, false},
		{false, true, false, false, false, false},
		{false, true, true, false, false, false},
		{true, false, false, false, true, true},
		{true, false, true, false, false, true},
		{true, true, false, true, true, true},
		{true, true, true, false, false, true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("public=%t trial=%t requiresSub=%t", tt.public, tt.trial, tt.requiresSub)
		cfg := []AIConfig{flagConfig(tt.public, tt.trial, tt.requiresSub)}

		assert.Equal(t, tt.guest, len(Visible(nil, false, cfg)) == 1, "%s: guest", name)
		assert.Equal(t, tt.free, len(Visible(freeUser, false, cfg)) == 1, "%s: free user", name)
		assert.Equal(t, tt.activeSub, len(Visible(subscriber, true, cfg)) == 1, "%s: subscriber", name)
	}
}

// owners always see their own personas, whatever the flags say
func TestVisible_OwnerBypassesFlags(t *testing.T) {
	owner := &users.User{ID: "owner-1"}
	cfg := []AIConfig{flagConfig(false, false, true)}

	assert.Len(t, Visible(owner, false, cfg), 1)
}

func TestVisible_SortsByName(t *testing.T) {
	user := &users.User{ID: "viewer-1"}
	configs := []AIConfig{
		{ID: "c1", OwnerID: "o", Name: "zeta", IsPublic: true},
		{ID: "c2", OwnerID: "o", Name: "alpha", IsPublic: true},
		{ID: "c3", OwnerID: "o", Name: "mid", IsPublic: true},
	}

	visible := Visible(user, true, configs)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, []string{visible[0].Name, visible[1].Name, visible[2].Name})
}

func TestVisible_EmptyInput(t *testing.T) {
	assert.Empty(t, Visible(nil, false, nil))
	assert.Empty(t, Visible(&users.User{ID: "u"}, true, []AIConfig{}))
}

func TestManageable_Guest(t *testing.T) {
	configs := []AIConfig{flagConfig(true, true, false)}

	assert.Empty(t, Manageable(nil, configs))
}

func TestManageable_AdminSeesAll(t *testing.T) {
	admin := &users.User{ID: "admin-1", IsAdmin: true}
	configs := []AIConfig{
		flagConfig(true, true, false),
		flagConfig(false, false, false),
	}

	assert.Len(t, Manageable(admin, configs), 2)
}

func TestManageable_RequiresAIPermission(t *testing.T) {
	owner := &users.User{ID: "owner-1"}
	configs := []AIConfig{flagConfig(false, false, false)}

	assert.Empty(t, Manageable(owner, configs), "owner without the ai permission manages nothing")

	owner.Permissions = []string{"ai"}
	assert.Len(t, Manageable(owner, configs), 1)
}

func TestManageable_OwnOnly(t *testing.T) {
	user := &users.User{ID: "other-user", Permissions: []string{"ai"}}
	configs := []AIConfig{flagConfig(true, true, false)}

	assert.Empty(t, Manageable(user, configs), "ai permission does not grant access to others' personas")
}
