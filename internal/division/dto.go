package division

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
)

type CreateDivisionRequest struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	BudgetCode       string     `json:"budget_code"`
	ParentDivisionID *uuid.UUID `json:"parent_division_id"`
}

type UpdateDivisionRequest struct {
	Name             *string                   `json:"name"`
	Description      *string                   `json:"description"`
	BudgetCode       *string                   `json:"budget_code"`
	ParentDivisionID internal.Patch[uuid.UUID] `json:"parent_division_id"`
}

type DivisionResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	BudgetCode       string     `json:"budget_code"`
	PayrollID        uuid.UUID  `json:"payroll_id"`
	ParentDivisionID *uuid.UUID `json:"parent_division_id"`
}

func (r CreateDivisionRequest) ToParams() CreateParams {
	return CreateParams{
		Name:             r.Name,
		Description:      r.Description,
		BudgetCode:       r.BudgetCode,
		ParentDivisionID: r.ParentDivisionID,
	}
}

func (r UpdateDivisionRequest) ToParams() UpdateParams {
	return UpdateParams{
		Name:             r.Name,
		Description:      r.Description,
		BudgetCode:       r.BudgetCode,
		ParentDivisionID: r.ParentDivisionID,
	}
}

func ToResponse(d *Division) DivisionResponse {
	return DivisionResponse{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		BudgetCode:       d.BudgetCode,
		PayrollID:        d.PayrollID,
		ParentDivisionID: d.ParentDivisionID,
	}
}

func ToResponses(divisions []*Division) []DivisionResponse {
	responses := make([]DivisionResponse, 0, len(divisions))
	for _, d := range divisions {
		responses = append(responses, ToResponse(d))
	}
	return responses
}
