package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyFullName = errors.New("full name is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrInvalidRole   = errors.New("role is not recognised")
	ErrNoRoles       = errors.New("employee needs at least one role")
)

// Role grants access to parts of the back office.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// ParseRole normalises case and blanks.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Employee is a back-office account.
type Employee struct {
	ID        int64
	Username  string
	FullName  string
	Email     string
	Roles     []Role
	CreatedAt time.Time
}

// NewEmployee validates the account fields. Without roles the employee becomes staff.
func NewEmployee(username, fullName, email string, roles []string) (*Employee, error) {
	e := &Employee{}
	if err := e.SetUsername(username); err != nil {
		return nil, err
	}
	e.FullName = strings.TrimSpace(fullName)
	if e.FullName == "" {
		return nil, ErrEmptyFullName
	}
	if err := e.SetEmail(email); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{string(RoleStaff)}
	}
	if err := e.SetRoles(roles); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Employee) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	e.Username = username
	return nil
}

func (e *Employee) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	e.Email = email
	return nil
}

// SetRoles parses and de-duplicates roles, keeping first-seen order.
func (e *Employee) SetRoles(raw []string) error {
	roles := make([]Role, 0, len(raw))
	seen := make(map[Role]struct{}, len(raw))
	for _, s := range raw {
		role, err := ParseRole(s)
		if err != nil {
			return err
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return ErrNoRoles
	}
	e.Roles = roles
	return nil
}

// PrimaryRole is the role shown in listings.
func (e *Employee) PrimaryRole() Role {
	if len(e.Roles) == 0 {
		return ""
	}
	return e.Roles[0]
}

func (e *Employee) HasRole(role Role) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Validate re-applies invariants before persistence.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(e.FullName) == "" {
		return ErrEmptyFullName
	}
	if e.Email != "" && !strings.Contains(e.Email, "@") {
		return ErrInvalidEmail
	}
	if len(e.Roles) == 0 {
		return ErrNoRoles
	}
	for _, role := range e.Roles {
		if !role.Valid() {
			return ErrInvalidRole
		}
	}
	return nil
}

// RoleStrings flattens roles for storage.
func (e *Employee) RoleStrings() []string {
	out := make([]string, len(e.Roles))
	for i, role := range e.Roles {
		out[i] = string(role)
	}
	return out
}
