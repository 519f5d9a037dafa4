package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
//
// Name and email are globally unique; role never changes after creation.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Gender    Gender
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Gender is an enumerated user attribute validated at the API boundary
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}
