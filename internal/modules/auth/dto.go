package auth

import "petsitter/internal/domain"

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Password2   string `json:"password2" binding:"required"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
	PAN         string `json:"pan"`
	Aadhar      string `json:"aadhar"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

type CreateAddressRequest struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zipcode   string   `json:"zipcode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
}

// AuthResponse mirrors the login/register payload: token plus the user with
// its profile inlined.
type AuthResponse struct {
	Token    string          `json:"token"`
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Profile  *domain.Profile `json:"profile,omitempty"`
}

func newAuthResponse(token string, u *domain.User, p *domain.Profile) AuthResponse {
	return AuthResponse{
		Token:    token,
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Profile:  p,
	}
}
