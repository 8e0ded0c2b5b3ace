package payroll

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	payrollDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/payroll"
)

// Payroll groups divisions and jobs under one organization.
type Payroll struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

func ToDataModel(p *Payroll) *payrollDatamodel.Payroll {
	return &payrollDatamodel.Payroll{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		OrganizationID: p.OrganizationID.String(),
	}
}

func FromDataModel(record *payrollDatamodel.Payroll) (*Payroll, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("stored payroll id is not a UUID", err)
	}
	organizationID, err := uuid.Parse(record.OrganizationID)
	if err != nil {
		return nil, internal.NewInternalError("stored payroll organization id is not a UUID", err)
	}
	return &Payroll{
		ID:             id,
		Name:           record.Name,
		Description:    record.Description,
		OrganizationID: organizationID,
	}, nil
}
