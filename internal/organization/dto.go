package organization

import "github.com/google/uuid"

type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

type UpdateOrganizationRequest struct {
	Name *string `json:"name"`
}

type OrganizationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (r CreateOrganizationRequest) ToParams() CreateParams {
	return CreateParams{Name: r.Name}
}

func (r UpdateOrganizationRequest) ToParams() UpdateParams {
	return UpdateParams{Name: r.Name}
}

func ToResponse(o *Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:   o.ID,
		Name: o.Name,
	}
}

func ToResponses(organizations []*Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, 0, len(organizations))
	for _, org := range organizations {
		responses = append(responses, ToResponse(org))
	}
	return responses
}
