package payroll

import "github.com/google/uuid"

type CreatePayrollRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePayrollRequest struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	OrganizationID *uuid.UUID `json:"organization_id"`
}

type PayrollResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

func (r CreatePayrollRequest) ToParams() CreateParams {
	return CreateParams{
		Name:        r.Name,
		Description: r.Description,
	}
}

func (r UpdatePayrollRequest) ToParams() UpdateParams {
	return UpdateParams{
		Name:           r.Name,
		Description:    r.Description,
		OrganizationID: r.OrganizationID,
	}
}

func ToResponse(p *Payroll) PayrollResponse {
	return PayrollResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		OrganizationID: p.OrganizationID,
	}
}

func ToResponses(payrolls []*Payroll) []PayrollResponse {
	responses := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, ToResponse(p))
	}
	return responses
}
