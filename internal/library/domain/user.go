package domain

import (
	"strings"
	"time"
)

type Role string

const (
	// RoleAdmin edits the catalog. Admins never borrow.
	RoleAdmin Role = "ADMIN"
	// RoleLibrarian countersigns loans and may borrow.
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
)

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return r, true
	}
	return "", false
}

type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderOther       Gender = "OTHER"
)

func ParseGender(s string) (Gender, bool) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderOther:
		return g, true
	}
	return "", false
}

type User struct {
	ID           string
	Username     string // unique, case-sensitive
	PasswordHash string // argon2id PHC string
	FirstName    string
	LastName     string
	Gender       Gender
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
