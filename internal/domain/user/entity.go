package user

import "time"

// User is a credential-store record. Users are provisioned out of
// band (cmd/provision) and are never created or deleted through the
// API.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Permissions  PermissionSet
	CreatedAt    time.Time
}
