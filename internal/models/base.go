package models

import "time"

// Base contains the common fields every backend entity carries.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberRole distinguishes the three directory profile kinds plus the
// moderators themselves.
type MemberRole string

const (
	MemberRoleProfessional MemberRole = "professional"
	MemberRoleStudent      MemberRole = "student"
	MemberRoleCompany      MemberRole = "company"
	MemberRoleAdmin        MemberRole = "admin"
)

// IsValidMemberRole checks if a given role is valid for registration.
func IsValidMemberRole(role MemberRole) bool {
	switch role {
	case MemberRoleProfessional, MemberRoleStudent, MemberRoleCompany:
		return true
	default:
		return false
	}
}
