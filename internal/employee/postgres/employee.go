package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	employeeDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/payroll-management/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Insert(record *employeeDatamodel.Employee) error {
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewDatabaseError("failed to insert employee", err)
	}
	return nil
}

func (r *EmployeeRepository) Fetch(id string) (*employeeDatamodel.Employee, error) {
	var record employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewDatabaseError("failed to fetch employee", err)
	}
	return &record, nil
}

func (r *EmployeeRepository) FetchByDivision(divisionID string) ([]*employeeDatamodel.Employee, error) {
	var records []*employeeDatamodel.Employee
	err := r.db.Where("division_id = ?", divisionID).Find(&records).Error
	if err != nil {
		return nil, internal.NewDatabaseError("failed to fetch employees", err)
	}
	return records, nil
}

func (r *EmployeeRepository) Update(id string, fields employee.UpdateFields) (*employeeDatamodel.Employee, error) {
	updates := map[string]interface{}{}
	if fields.IDNumber != nil {
		updates["id_number"] = *fields.IDNumber
	}
	if fields.LastName != nil {
		updates["last_name"] = *fields.LastName
	}
	if fields.FirstName != nil {
		updates["first_name"] = *fields.FirstName
	}
	if fields.Address != nil {
		updates["address"] = *fields.Address
	}
	if fields.Phone != nil {
		updates["phone"] = *fields.Phone
	}
	if fields.PlaceOfBirth != nil {
		updates["place_of_birth"] = *fields.PlaceOfBirth
	}
	if fields.DateOfBirth != nil {
		updates["date_of_birth"] = *fields.DateOfBirth
	}
	if fields.Nationality != nil {
		updates["nationality"] = *fields.Nationality
	}
	if fields.MaritalStatus != nil {
		updates["marital_status"] = *fields.MaritalStatus
	}
	if fields.Gender != nil {
		updates["gender"] = *fields.Gender
	}
	if fields.HireDate != nil {
		updates["hire_date"] = *fields.HireDate
	}
	if fields.TerminationDate.Present {
		if fields.TerminationDate.Null {
			updates["termination_date"] = nil
		} else {
			updates["termination_date"] = fields.TerminationDate.Value
		}
	}
	if fields.Classification != nil {
		updates["classification"] = *fields.Classification
	}
	if fields.JobID != nil {
		updates["job_id"] = fields.JobID.String()
	}
	if fields.BankID != nil {
		updates["bank_id"] = fields.BankID.String()
	}
	if fields.BankAccount != nil {
		updates["bank_account"] = *fields.BankAccount
	}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}
	if fields.Hours != nil {
		updates["hours"] = *fields.Hours
	}

	if len(updates) > 0 {
		err := r.db.Model(&employeeDatamodel.Employee{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, internal.NewDatabaseError("failed to update employee", err)
		}
	}

	return r.Fetch(id)
}

func (r *EmployeeRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return false, internal.NewDatabaseError("failed to delete employee", result.Error)
	}
	return result.RowsAffected > 0, nil
}
