package organization

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	orgDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/organization"
)

// Organization is the root of the ownership chain; every payroll and bank
// hangs off one.
type Organization struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func ToDataModel(o *Organization) *orgDatamodel.Organization {
	return &orgDatamodel.Organization{
		ID:   o.ID.String(),
		Name: o.Name,
	}
}

func FromDataModel(record *orgDatamodel.Organization) (*Organization, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("stored organization id is not a UUID", err)
	}
	return &Organization{
		ID:   id,
		Name: record.Name,
	}, nil
}
