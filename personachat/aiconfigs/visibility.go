package aiconfigs

import (
	"sort"

	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/users"
)

// Visible filters personas down to the set the viewer may chat with.
// It is evaluated per request, never cached.
//
//   - guest (nil user): public AND trial-allowed AND not subscription-gated
//   - active subscriber (timed or perpetual): public OR owned
//   - authenticated without an active subscription: owned OR
//     (public AND not subscription-gated)
//
// Results are sorted by name ascending. This is a runtime-usability
// view; the back-office management view is Manageable below and the
// two must not be conflated.
func Visible(user *users.User, hasActiveSubscription bool, configs []AIConfig) []AIConfig {
	result := make([]AIConfig, 0, len(configs))

	for _, cfg := range configs {
		if visibleTo(user, hasActiveSubscription, cfg) {
			result = append(result, cfg)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

func visibleTo(user *users.User, hasActiveSubscription bool, cfg AIConfig) bool {
	if user == nil {
		return cfg.IsPublic && cfg.IsTrialAllowed && !cfg.RequiresSubscription
	}

	if cfg.OwnerID == user.ID {
		return true
	}

	if hasActiveSubscription {
		return cfg.IsPublic
	}

	return cfg.IsPublic && !cfg.RequiresSubscription
}

// Manageable filters personas down to the set the viewer may edit in
// the back-office: admins manage everything, holders of the ai
// permission manage their own, everyone else manages nothing. This is
// an authorization view, unrelated to chat visibility.
func Manageable(user *users.User, configs []AIConfig) []AIConfig {
	if user == nil {
		return []AIConfig{}
	}

	if user.IsAdmin {
		return configs
	}

	if !auth.HasPermission(user.Permissions, auth.PermissionAI) {
		return []AIConfig{}
	}

	result := make([]AIConfig, 0, len(configs))

	for _, cfg := range configs {
		if cfg.OwnerID == user.ID {
			result = append(result, cfg)
		}
	}

	return result
}
