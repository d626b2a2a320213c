package models

import "time"

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
)

// User is an account in the users collection. Password holds a bcrypt hash;
// the plaintext never reaches the store. Username uniqueness is not enforced
// at write time, lookups return the first match.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password,omitempty"`
	Role      UserRole   `json:"role"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func (u *User) DocID() string      { return u.ID }
func (u *User) SetDocID(id string) { u.ID = id }

// Redacted returns a copy safe to put on the wire: the password hash is
// stripped, everything else is kept.
func (u *User) Redacted() User {
	cp := *u
	cp.Password = ""
	return cp
}
