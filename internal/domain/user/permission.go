package user

type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
	PermissionAdmin Permission = "admin"
)

// IsValid reports whether p is one of the known capabilities.
func (p Permission) IsValid() bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionAdmin:
		return true
	}
	return false
}

// PermissionSet is the capability set carried by a credential and by
// issued access tokens.
type PermissionSet []Permission

// Allows reports whether the set grants the required capability.
// admin is a superset: it grants every capability.
func (s PermissionSet) Allows(required Permission) bool {
	for _, p := range s {
		if p == required || p == PermissionAdmin {
			return true
		}
	}
	return false
}

// Contains reports exact membership, without the admin superset rule.
func (s PermissionSet) Contains(p Permission) bool {
	for _, held := range s {
		if held == p {
			return true
		}
	}
	return false
}

func (s PermissionSet) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = string(p)
	}
	return out
}

// ParsePermissions converts raw claim or column values into a
// PermissionSet, dropping anything that is not a known capability.
func ParsePermissions(raw []string) PermissionSet {
	set := make(PermissionSet, 0, len(raw))
	for _, r := range raw {
		p := Permission(r)
		if p.IsValid() {
			set = append(set, p)
		}
	}
	return set
}
