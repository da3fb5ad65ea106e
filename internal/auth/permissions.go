package auth

import "fmt"

// Permission is a closed set of back-office capability tags. Role rows in
// older revisions carried free-form string arrays; every tag accepted here
// must be one of the constants below.
type Permission string

const (
	PermissionUsers        Permission = "users"
	PermissionAI           Permission = "ai"
	PermissionPlans        Permission = "plans"
	PermissionTransactions Permission = "transactions"
)

// all known permission tags, in display order
func AllPermissions() []Permission {
	return []Permission{
		PermissionUsers,
		PermissionAI,
		PermissionPlans,
		PermissionTransactions,
	}
}

// reports whether the tag is a member of the closed set
func (p Permission) Valid() bool {
	switch p {
	case PermissionUsers, PermissionAI, PermissionPlans, PermissionTransactions:
		return true
	}

	return false
}

// converts raw tags (from storage or a request body) into permissions,
// rejecting anything outside the closed set
func ParsePermissions(tags []string) ([]Permission, error) {
	perms := make([]Permission, 0, len(tags))

	for _, tag := range tags {
		p := Permission(tag)
		if !p.Valid() {
			return nil, fmt.Errorf("unknown permission tag: %q", tag)
		}

		perms = append(perms, p)
	}

	return perms, nil
}

// reports whether the tag set grants the permission
func HasPermission(tags []string, p Permission) bool {
	for _, tag := range tags {
		if Permission(tag) == p {
			return true
		}
	}

	return false
}
