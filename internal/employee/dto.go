package employee

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
)

type CreateEmployeeRequest struct {
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
}

type UpdateEmployeeRequest struct {
	IDNumber        *string                       `json:"id_number"`
	LastName        *string                       `json:"last_name"`
	FirstName       *string                       `json:"first_name"`
	Address         *string                       `json:"address"`
	Phone           *string                       `json:"phone"`
	PlaceOfBirth    *string                       `json:"place_of_birth"`
	DateOfBirth     *internal.Date                `json:"date_of_birth"`
	Nationality     *string                       `json:"nationality"`
	MaritalStatus   *string                       `json:"marital_status"`
	Gender          *string                       `json:"gender"`
	HireDate        *internal.Date                `json:"hire_date"`
	TerminationDate internal.Patch[internal.Date] `json:"termination_date"`
	Classification  *string                       `json:"classification"`
	JobID           *uuid.UUID                    `json:"job_id"`
	BankID          *uuid.UUID                    `json:"bank_id"`
	BankAccount     *string                       `json:"bank_account"`
	Status          *string                       `json:"status"`
	Hours           *int                          `json:"hours"`
}

type EmployeeResponse struct {
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

func (r CreateEmployeeRequest) ToParams() CreateParams {
	return CreateParams{
		IDNumber:        r.IDNumber,
		LastName:        r.LastName,
		FirstName:       r.FirstName,
		Address:         r.Address,
		Phone:           r.Phone,
		PlaceOfBirth:    r.PlaceOfBirth,
		DateOfBirth:     r.DateOfBirth,
		Nationality:     r.Nationality,
		MaritalStatus:   r.MaritalStatus,
		Gender:          r.Gender,
		HireDate:        r.HireDate,
		TerminationDate: r.TerminationDate,
		Classification:  r.Classification,
		JobID:           r.JobID,
		BankID:          r.BankID,
		BankAccount:     r.BankAccount,
		Status:          r.Status,
		Hours:           r.Hours,
	}
}

func (r UpdateEmployeeRequest) ToParams() UpdateParams {
	return UpdateParams{
		IDNumber:        r.IDNumber,
		LastName:        r.LastName,
		FirstName:       r.FirstName,
		Address:         r.Address,
		Phone:           r.Phone,
		PlaceOfBirth:    r.PlaceOfBirth,
		DateOfBirth:     r.DateOfBirth,
		Nationality:     r.Nationality,
		MaritalStatus:   r.MaritalStatus,
		Gender:          r.Gender,
		HireDate:        r.HireDate,
		TerminationDate: r.TerminationDate,
		Classification:  r.Classification,
		JobID:           r.JobID,
		BankID:          r.BankID,
		BankAccount:     r.BankAccount,
		Status:          r.Status,
		Hours:           r.Hours,
	}
}

func ToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
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
		JobID:           e.JobID,
		BankID:          e.BankID,
		BankAccount:     e.BankAccount,
		Status:          e.Status,
		Hours:           e.Hours,
		DivisionID:      e.DivisionID,
		PayrollID:       e.PayrollID,
	}
}

func ToResponses(employees []*Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToResponse(e))
	}
	return responses
}
