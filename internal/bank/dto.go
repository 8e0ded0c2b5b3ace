package bank

import "github.com/google/uuid"

type CreateBankRequest struct {
	Name string `json:"name"`
}

type UpdateBankRequest struct {
	Name *string `json:"name"`
}

type BankResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

func (r CreateBankRequest) ToParams() CreateParams {
	return CreateParams{Name: r.Name}
}

func (r UpdateBankRequest) ToParams() UpdateParams {
	return UpdateParams{Name: r.Name}
}

func ToResponse(b *Bank) BankResponse {
	return BankResponse{
		ID:             b.ID,
		Name:           b.Name,
		OrganizationID: b.OrganizationID,
	}
}

func ToResponses(banks []*Bank) []BankResponse {
	responses := make([]BankResponse, 0, len(banks))
	for _, b := range banks {
		responses = append(responses, ToResponse(b))
	}
	return responses
}
