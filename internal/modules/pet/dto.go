package pet

import "petsitter/internal/domain"

type CreatePetRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Pet    string `json:"pet" binding:"required"`
	Breed  string `json:"breed"`
	// Age is accepted as a JSON number or numeric string.
	Age           any    `json:"age"`
	Bio           string `json:"bio"`
	ImportantInfo string `json:"important_info"`
	ImageURL      string `json:"image_url"`
}

// PetOwner is the minimal owner projection embedded in pet payloads.
type PetOwner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PetResponse adds the pet-type display label and minimal owner info.
// The outer User field shadows the full user attached to the pet.
type PetResponse struct {
	domain.Pet
	PetLabel string    `json:"pet_label"`
	User     *PetOwner `json:"user,omitempty"`
}

func toPetResponse(p domain.Pet) PetResponse {
	resp := PetResponse{Pet: p, PetLabel: p.Type.Label()}
	if p.User != nil {
		resp.User = &PetOwner{ID: p.User.ID, Username: p.User.Username, Email: p.User.Email}
	}
	return resp
}
