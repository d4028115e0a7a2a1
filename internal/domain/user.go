package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleClient   UserRole = "client"
	UserRoleProvider UserRole = "provider"
)

const (
	UserTypeIndividual = "individual"
	UserTypeCompany    = "company"

	minUsernameLength = 3
	maxUsernameLength = 50
)

var (
	ErrInvalidUsername = errors.New("username must be between 3 and 50 characters")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidUserType = errors.New("user type must be 'individual' or 'company'")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidRole     = errors.New("role must be 'client' or 'provider'")
)

type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone,omitempty"`
	Type         string    `json:"type"`
	Role         UserRole  `json:"role"`
	ClientPlanID *int32    `json:"client_plan_id,omitempty"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
	IsDeleted    bool      `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

func NewUser(username, email, passwordHash, name string, phone *string, userType string, role UserRole, clientPlanID *int32) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, ErrInvalidUsername
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if userType != UserTypeIndividual && userType != UserTypeCompany {
		return nil, ErrInvalidUserType
	}
	if role != UserRoleClient && role != UserRoleProvider {
		return nil, ErrInvalidRole
	}
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Phone:        phone,
		Type:         userType,
		Role:         role,
		ClientPlanID: clientPlanID,
		CreatedOn:    time.Now().UTC(),
	}, nil
}

// DisplayName is what billing shows for the user; email when present,
// otherwise a stable placeholder.
func (u *User) DisplayName() string {
	if u.Email != "" {
		return u.Email
	}
	return fmt.Sprintf("Client #%d", u.ID)
}
