package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	divisionDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/division"
	"github.com/frahmantamala/payroll-management/internal/division"
)

type DivisionRepository struct {
	db *gorm.DB
}

func NewDivisionRepository(db *gorm.DB) division.RepositoryAPI {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) Insert(record *divisionDatamodel.Division) error {
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewDatabaseError("failed to insert division", err)
	}
	return nil
}

func (r *DivisionRepository) Fetch(id string) (*divisionDatamodel.Division, error) {
	var record divisionDatamodel.Division
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewDatabaseError("failed to fetch division", err)
	}
	return &record, nil
}

func (r *DivisionRepository) FetchByPayroll(payrollID string) ([]*divisionDatamodel.Division, error) {
	var records []*divisionDatamodel.Division
	err := r.db.Where("payroll_id = ?", payrollID).Find(&records).Error
	if err != nil {
		return nil, internal.NewDatabaseError("failed to fetch divisions", err)
	}
	return records, nil
}

func (r *DivisionRepository) Update(id string, fields division.UpdateFields) (*divisionDatamodel.Division, error) {
	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.BudgetCode != nil {
		updates["budget_code"] = *fields.BudgetCode
	}
	if fields.ParentDivisionID.Present {
		if fields.ParentDivisionID.Null {
			updates["parent_division_id"] = nil
		} else {
			updates["parent_division_id"] = fields.ParentDivisionID.Value.String()
		}
	}

	if len(updates) > 0 {
		err := r.db.Model(&divisionDatamodel.Division{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, internal.NewDatabaseError("failed to update division", err)
		}
	}

	return r.Fetch(id)
}

func (r *DivisionRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&divisionDatamodel.Division{})
	if result.Error != nil {
		return false, internal.NewDatabaseError("failed to delete division", result.Error)
	}
	return result.RowsAffected > 0, nil
}
