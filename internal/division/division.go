package division

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	divisionDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/division"
)

// Division is a node in a payroll-scoped tree; ParentDivisionID is nil for
// roots.
type Division struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	BudgetCode       string     `json:"budget_code"`
	PayrollID        uuid.UUID  `json:"payroll_id"`
	ParentDivisionID *uuid.UUID `json:"parent_division_id"`
}

func ToDataModel(d *Division) *divisionDatamodel.Division {
	record := &divisionDatamodel.Division{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		BudgetCode:  d.BudgetCode,
		PayrollID:   d.PayrollID.String(),
	}
	if d.ParentDivisionID != nil {
		parent := d.ParentDivisionID.String()
		record.ParentDivisionID = &parent
	}
	return record
}

func FromDataModel(record *divisionDatamodel.Division) (*Division, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("stored division id is not a UUID", err)
	}
	payrollID, err := uuid.Parse(record.PayrollID)
	if err != nil {
		return nil, internal.NewInternalError("stored division payroll id is not a UUID", err)
	}

	var parentID *uuid.UUID
	if record.ParentDivisionID != nil {
		parsed, err := uuid.Parse(*record.ParentDivisionID)
		if err != nil {
			return nil, internal.NewInternalError("stored parent division id is not a UUID", err)
		}
		parentID = &parsed
	}

	return &Division{
		ID:               id,
		Name:             record.Name,
		Description:      record.Description,
		BudgetCode:       record.BudgetCode,
		PayrollID:        payrollID,
		ParentDivisionID: parentID,
	}, nil
}
