package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	payrollDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-management/internal/payroll"
)

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) payroll.RepositoryAPI {
	return &PayrollRepository{db: db}
}

func (r *PayrollRepository) Insert(record *payrollDatamodel.Payroll) error {
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewDatabaseError("failed to insert payroll", err)
	}
	return nil
}

func (r *PayrollRepository) Fetch(id string) (*payrollDatamodel.Payroll, error) {
	var record payrollDatamodel.Payroll
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewDatabaseError("failed to fetch payroll", err)
	}
	return &record, nil
}

func (r *PayrollRepository) FetchByOrganization(organizationID string) ([]*payrollDatamodel.Payroll, error) {
	var records []*payrollDatamodel.Payroll
	err := r.db.Where("organization_id = ?", organizationID).Find(&records).Error
	if err != nil {
		return nil, internal.NewDatabaseError("failed to fetch payrolls", err)
	}
	return records, nil
}

func (r *PayrollRepository) Update(id string, fields payroll.UpdateFields) (*payrollDatamodel.Payroll, error) {
	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.OrganizationID != nil {
		updates["organization_id"] = *fields.OrganizationID
	}

	if len(updates) > 0 {
		err := r.db.Model(&payrollDatamodel.Payroll{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, internal.NewDatabaseError("failed to update payroll", err)
		}
	}

	return r.Fetch(id)
}

func (r *PayrollRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&payrollDatamodel.Payroll{})
	if result.Error != nil {
		return false, internal.NewDatabaseError("failed to delete payroll", result.Error)
	}
	return result.RowsAffected > 0, nil
}
