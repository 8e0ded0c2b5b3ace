package bank

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	bankDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/bank"
)

type Bank struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

func ToDataModel(b *Bank) *bankDatamodel.Bank {
	return &bankDatamodel.Bank{
		ID:             b.ID.String(),
		Name:           b.Name,
		OrganizationID: b.OrganizationID.String(),
	}
}

func FromDataModel(record *bankDatamodel.Bank) (*Bank, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("stored bank id is not a UUID", err)
	}
	organizationID, err := uuid.Parse(record.OrganizationID)
	if err != nil {
		return nil, internal.NewInternalError("stored bank organization id is not a UUID", err)
	}
	return &Bank{
		ID:             id,
		Name:           record.Name,
		OrganizationID: organizationID,
	}, nil
}
