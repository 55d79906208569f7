package domain

import "time"

type UserRole string

const (
	RoleNormalUser UserRole = "normalUser"
	RolePetsitter  UserRole = "petsitter"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleNormalUser, RolePetsitter:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
}

// Profile is the marketplace-facing identity attached 1:1 to a User.
// Email and username are denormalized copies of the owning User row and are
// refreshed by the identity service whenever the user record changes.
type Profile struct {
	ID          int64     `json:"-"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        UserRole  `json:"role"`
	PhoneNumber string    `json:"phone_number"`
	PAN         string    `json:"pan,omitempty"`
	Aadhar      string    `json:"aadhar,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
