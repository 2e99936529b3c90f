// Package user provides the domain model for admin console accounts.
package user

import (
	"fmt"
	"time"
)

// Role represents an account role
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleStaff     Role = "staff"
	RoleVolunteer Role = "volunteer"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleVolunteer:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Status represents an account status
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusLocked   Status = "locked"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusLocked:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// User represents the admin account aggregate root.
// The password field always holds a bcrypt hash, never plaintext.
type User struct {
	id           uint
	username     string
	passwordHash string
	realName     string
	role         Role
	avatar       *string
	phone        *string
	email        *string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

// NewUser creates a new active account with the given password hash
func NewUser(username, passwordHash, realName string, role Role) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if realName == "" {
		return nil, fmt.Errorf("real name is required")
	}
	if role == "" {
		role = RoleStaff
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		realName:     realName,
		role:         role,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	username, passwordHash, realName string,
	role Role,
	avatar *string,
	phone *string,
	email *string,
	status Status,
	createdAt, updatedAt time.Time,
	version int,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		realName:     realName,
		role:         role,
		avatar:       avatar,
		phone:        phone,
		email:        email,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) RealName() string     { return u.realName }
func (u *User) Role() Role           { return u.role }
func (u *User) Avatar() *string      { return u.avatar }
func (u *User) Phone() *string       { return u.phone }
func (u *User) Email() *string       { return u.email }
func (u *User) Status() Status       { return u.status }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Version returns the aggregate version for optimistic locking
func (u *User) Version() int { return u.version }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsActive checks if the account may log in
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	RealName *string
	Role     *Role
	Avatar   *string
	Phone    *string
	Email    *string
	Status   *Status
}

// Update applies a partial update to the user
func (u *User) Update(attrs UpdateAttrs) error {
	if attrs.RealName != nil {
		if *attrs.RealName == "" {
			return fmt.Errorf("real name cannot be empty")
		}
		u.realName = *attrs.RealName
	}
	if attrs.Role != nil {
		if !attrs.Role.IsValid() {
			return fmt.Errorf("invalid role: %s", *attrs.Role)
		}
		u.role = *attrs.Role
	}
	if attrs.Avatar != nil {
		u.avatar = attrs.Avatar
	}
	if attrs.Phone != nil {
		u.phone = attrs.Phone
	}
	if attrs.Email != nil {
		u.email = attrs.Email
	}
	if attrs.Status != nil {
		if !attrs.Status.IsValid() {
			return fmt.Errorf("invalid status: %s", *attrs.Status)
		}
		u.status = *attrs.Status
	}

	u.updatedAt = time.Now()
	u.version++
	return nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	u.version++
	return nil
}

// Freeze locks the account
func (u *User) Freeze() {
	if u.status == StatusLocked {
		return
	}
	u.status = StatusLocked
	u.updatedAt = time.Now()
	u.version++
}

// Unfreeze reactivates the account
func (u *User) Unfreeze() {
	if u.status == StatusActive {
		return
	}
	u.status = StatusActive
	u.updatedAt = time.Now()
	u.version++
}

// IncrementVersion increments the version for optimistic locking
func (u *User) IncrementVersion() {
	u.version++
}
