package domain

import "time"

type PetType string

const (
	PetCat    PetType = "cat"
	PetDog    PetType = "dog"
	PetBird   PetType = "bird"
	PetFish   PetType = "fish"
	PetRabbit PetType = "rabbit"
	PetOther  PetType = "other"
)

// PetTypes is the fixed set of supported pet kinds, in display order.
var PetTypes = []PetType{PetCat, PetDog, PetBird, PetFish, PetRabbit, PetOther}

var petTypeLabels = map[PetType]string{
	PetCat:    "Cat",
	PetDog:    "Dog",
	PetBird:   "Bird",
	PetFish:   "Fish",
	PetRabbit: "Rabbit",
	PetOther:  "Other",
}

func ParsePetType(s string) (PetType, bool) {
	if _, ok := petTypeLabels[PetType(s)]; ok {
		return PetType(s), true
	}
	return "", false
}

func (p PetType) Label() string {
	if l, ok := petTypeLabels[p]; ok {
		return l
	}
	return string(p)
}

type Pet struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"-"`
	Name          string    `json:"name"`
	Type          PetType   `json:"pet"`
	Breed         string    `json:"breed"`
	Age           *int      `json:"age"`
	Bio           string    `json:"bio"`
	ImportantInfo string    `json:"important_info"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User *User `json:"user,omitempty"`
}
