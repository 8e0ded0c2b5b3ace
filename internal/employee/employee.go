package employee

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	employeeDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/employee"
)

// Employee sits at the bottom of the ownership chain; its division and
// payroll ids are denormalized onto the record at creation time.
type Employee struct {
	ID              uuid.UUID      `json:"id"`
	IDNumber        string         `json:"id_number"`
	LastName        string         `json:"last_name"`
	FirstName       string         `json:"first_name"`
	Address         string         `json:"address"`
	Phone           string         `json:"phone"`
	PlaceOfBirth    string         `json:"place_of_birth"`
	DateOfBirth     internal.Date  `json:"date_of_birth"`
	Nationality     string         `json:"nationality"`
	MaritalStatus   string         `json:"marital_status"`
	Gender          string         `json:"gender"`
	HireDate        internal.Date  `json:"hire_date"`
	TerminationDate *internal.Date `json:"termination_date"`
	Classification  string         `json:"classification"`
	JobID           uuid.UUID      `json:"job_id"`
	BankID          uuid.UUID      `json:"bank_id"`
	BankAccount     string         `json:"bank_account"`
	Status          string         `json:"status"`
	Hours           int            `json:"hours"`
	DivisionID      uuid.UUID      `json:"division_id"`
	PayrollID       uuid.UUID      `json:"payroll_id"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:              e.ID.String(),
		IDNumber:        e.IDNumber,
		LastName:        e.LastName,
		FirstName:       e.FirstName,
		Address:         e.Address,
		Phone:           e.Phone,
		PlaceOfBirth:    e.PlaceOfBirth,
		DateOfBirth:     e.DateOfBirth,
		Nationality:     e.Nationality,
		MaritalStatus:   e.MaritalStatus,
		Gender:          e.Gender,
		HireDate:        e.HireDate,
		TerminationDate: e.TerminationDate,
		Classification:  e.Classification,
		JobID:           e.JobID.String(),
		BankID:          e.BankID.String(),
		BankAccount:     e.BankAccount,
		Status:          e.Status,
		Hours:           e.Hours,
		DivisionID:      e.DivisionID.String(),
		PayrollID:       e.PayrollID.String(),
	}
}

func FromDataModel(record *employeeDatamodel.Employee) (*Employee, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("stored employee id is not a UUID", err)
	}
	jobID, err := uuid.Parse(record.JobID)
	if err != nil {
		return nil, internal.NewInternalError("stored employee job id is not a UUID", err)
	}
	bankID, err := uuid.Parse(record.BankID)
	if err != nil {
		return nil, internal.NewInternalError("stored employee bank id is not a UUID", err)
	}
	divisionID, err := uuid.Parse(record.DivisionID)
	if err != nil {
		return nil, internal.NewInternalError("stored employee division id is not a UUID", err)
	}
	payrollID, err := uuid.Parse(record.PayrollID)
	if err != nil {
		return nil, internal.NewInternalError("stored employee payroll id is not a UUID", err)
	}

	return &Employee{
		ID:              id,
		IDNumber:        record.IDNumber,
		LastName:        record.LastName,
		FirstName:       record.FirstName,
		Address:         record.Address,
		Phone:           record.Phone,
		PlaceOfBirth:    record.PlaceOfBirth,
		DateOfBirth:     record.DateOfBirth,
		Nationality:     record.Nationality,
		MaritalStatus:   record.MaritalStatus,
		Gender:          record.Gender,
		HireDate:        record.HireDate,
		TerminationDate: record.TerminationDate,
		Classification:  record.Classification,
		JobID:           jobID,
		BankID:          bankID,
		BankAccount:     record.BankAccount,
		Status:          record.Status,
		Hours:           record.Hours,
		DivisionID:      divisionID,
		PayrollID:       payrollID,
	}, nil
}
