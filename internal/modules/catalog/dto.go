package catalog

import "petsitter/internal/domain"

// PetChoice is one entry of the fixed pet-type enum exposed to clients.
type PetChoice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type CreateSitterServiceRequest struct {
	UserID    int64 `json:"user_id" binding:"required"`
	ServiceID int64 `json:"service_id" binding:"required"`
	AddressID int64 `json:"address_id" binding:"required"`
	// Rate is accepted as a JSON number or numeric string; anything else is
	// rejected before any row is written.
	Rate any `json:"rate" binding:"required"`
}

// ServiceResponse augments a catalog service with the display label for its
// pet type.
type ServiceResponse struct {
	domain.Service
	PetLabel string `json:"pet_label"`
}

func toServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{Service: s, PetLabel: s.PetType.Label()}
}

func toServiceResponses(list []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out
}
