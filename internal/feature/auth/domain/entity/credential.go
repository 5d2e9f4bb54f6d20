// Package entity defines the domain entities for the auth feature.
package entity

import (
	"strings"
	"time"
)

// Role classifies an account. It decides which profile store the account is
// synced against and which route groups it may call.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes a wire-level role string. The second return value is
// false for anything but the three known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, true
	case RoleAlumni:
		return RoleAlumni, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// Equals compares roles case-insensitively.
func (r Role) Equals(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// Credential is a login-database account record. The email is unique across
// all roles; profile documents in the role stores are keyed by it.
type Credential struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"not null;index" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the credential view returned to clients after login.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public strips the secret fields for wire responses.
func (c *Credential) Public() PublicUser {
	return PublicUser{Name: c.Name, Email: c.Email, Role: c.Role}
}
