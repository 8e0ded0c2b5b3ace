package employee

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/bank"
	employeeDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/payroll-management/internal/division"
	"github.com/frahmantamala/payroll-management/internal/job"
)

type CreateParams struct {
	IDNumber        string
	LastName        string
	FirstName       string
	Address         string
	Phone           string
	PlaceOfBirth    string
	DateOfBirth     internal.Date
	Nationality     string
	MaritalStatus   string
	Gender          string
	HireDate        internal.Date
	TerminationDate *internal.Date
	Classification  string
	JobID           uuid.UUID
	BankID          uuid.UUID
	BankAccount     string
	Status          string
	Hours           int
}

type UpdateParams struct {
	IDNumber      *string
	LastName      *string
	FirstName     *string
	Address       *string
	Phone         *string
	PlaceOfBirth  *string
	DateOfBirth   *internal.Date
	Nationality   *string
	MaritalStatus *string
	Gender        *string
	HireDate      *internal.Date
	// TerminationDate distinguishes absent (keep), null (clear) and value.
	TerminationDate internal.Patch[internal.Date]
	Classification  *string
	JobID           *uuid.UUID
	BankID          *uuid.UUID
	BankAccount     *string
	Status          *string
	Hours           *int
}

type UpdateFields struct {
	IDNumber        *string
	LastName        *string
	FirstName       *string
	Address         *string
	Phone           *string
	PlaceOfBirth    *string
	DateOfBirth     *internal.Date
	Nationality     *string
	MaritalStatus   *string
	Gender          *string
	HireDate        *internal.Date
	TerminationDate internal.Patch[internal.Date]
	Classification  *string
	JobID           *uuid.UUID
	BankID          *uuid.UUID
	BankAccount     *string
	Status          *string
	Hours           *int
}

type RepositoryAPI interface {
	Insert(record *employeeDatamodel.Employee) error
	Fetch(id string) (*employeeDatamodel.Employee, error)
	FetchByDivision(divisionID string) ([]*employeeDatamodel.Employee, error)
	Update(id string, fields UpdateFields) (*employeeDatamodel.Employee, error)
	Delete(id string) (bool, error)
}

type DivisionAPI interface {
	Get(organizationID, payrollID, divisionID uuid.UUID) (*division.Division, error)
}

type JobAPI interface {
	Get(organizationID, payrollID, jobID uuid.UUID) (*job.Job, error)
}

type BankAPI interface {
	Get(organizationID, bankID uuid.UUID) (*bank.Bank, error)
}

type Service struct {
	repo      RepositoryAPI
	divisions DivisionAPI
	jobs      JobAPI
	banks     BankAPI
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, divisions DivisionAPI, jobs JobAPI, banks BankAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		divisions: divisions,
		jobs:      jobs,
		banks:     banks,
		logger:    logger,
	}
}

func (s *Service) Create(organizationID, payrollID, divisionID uuid.UUID, params CreateParams) (*Employee, error) {
	if err := s.ensureDivisionAccessible(organizationID, payrollID, divisionID); err != nil {
		return nil, err
	}
	if err := s.ensureJobBelongs(organizationID, payrollID, params.JobID); err != nil {
		return nil, err
	}
	if err := s.ensureBankBelongs(organizationID, params.BankID); err != nil {
		return nil, err
	}

	idNumber, err := normalizeField(params.IDNumber, "employee id number")
	if err != nil {
		return nil, err
	}
	lastName, err := normalizeField(params.LastName, "employee last name")
	if err != nil {
		return nil, err
	}
	firstName, err := normalizeField(params.FirstName, "employee first name")
	if err != nil {
		return nil, err
	}
	address, err := normalizeField(params.Address, "employee address")
	if err != nil {
		return nil, err
	}
	phone, err := normalizeField(params.Phone, "employee phone")
	if err != nil {
		return nil, err
	}
	placeOfBirth, err := normalizeField(params.PlaceOfBirth, "employee place of birth")
	if err != nil {
		return nil, err
	}
	nationality, err := normalizeField(params.Nationality, "employee nationality")
	if err != nil {
		return nil, err
	}
	maritalStatus, err := normalizeField(params.MaritalStatus, "employee marital status")
	if err != nil {
		return nil, err
	}
	gender, err := normalizeField(params.Gender, "employee gender")
	if err != nil {
		return nil, err
	}
	classification, err := normalizeField(params.Classification, "employee classification")
	if err != nil {
		return nil, err
	}
	bankAccount, err := normalizeField(params.BankAccount, "employee bank account")
	if err != nil {
		return nil, err
	}
	status, err := normalizeField(params.Status, "employee status")
	if err != nil {
		return nil, err
	}

	if err := validateHours(params.Hours); err != nil {
		return nil, err
	}
	if err := validateRequiredDate(params.DateOfBirth, "employee date of birth"); err != nil {
		return nil, err
	}
	if err := validateRequiredDate(params.HireDate, "employee hire date"); err != nil {
		return nil, err
	}
	if err := validateTerminationDate(params.HireDate, params.TerminationDate); err != nil {
		return nil, err
	}

	record := &employeeDatamodel.Employee{
		ID:              uuid.New().String(),
		IDNumber:        idNumber,
		LastName:        lastName,
		FirstName:       firstName,
		Address:         address,
		Phone:           phone,
		PlaceOfBirth:    placeOfBirth,
		DateOfBirth:     params.DateOfBirth,
		Nationality:     nationality,
		MaritalStatus:   maritalStatus,
		Gender:          gender,
		HireDate:        params.HireDate,
		TerminationDate: params.TerminationDate,
		Classification:  classification,
		JobID:           params.JobID.String(),
		BankID:          params.BankID.String(),
		BankAccount:     bankAccount,
		Status:          status,
		Hours:           params.Hours,
		DivisionID:      divisionID.String(),
		PayrollID:       payrollID.String(),
	}
	if err := s.repo.Insert(record); err != nil {
		s.logger.Error("failed to insert employee", "error", err, "division_id", divisionID)
		return nil, err
	}

	return FromDataModel(record)
}

func (s *Service) Get(organizationID, payrollID, divisionID, employeeID uuid.UUID) (*Employee, error) {
	if err := s.ensureDivisionAccessible(organizationID, payrollID, divisionID); err != nil {
		return nil, err
	}

	record, err := s.repo.Fetch(employeeID.String())
	if err != nil {
		s.logger.Error("failed to fetch employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if record == nil || record.DivisionID != divisionID.String() || record.PayrollID != payrollID.String() {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) List(organizationID, payrollID, divisionID uuid.UUID) ([]*Employee, error) {
	if err := s.ensureDivisionAccessible(organizationID, payrollID, divisionID); err != nil {
		return nil, err
	}

	records, err := s.repo.FetchByDivision(divisionID.String())
	if err != nil {
		s.logger.Error("failed to list employees", "error", err, "division_id", divisionID)
		return nil, err
	}

	employees := make([]*Employee, 0, len(records))
	for _, record := range records {
		e, err := FromDataModel(record)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].LastName != employees[j].LastName {
			return employees[i].LastName < employees[j].LastName
		}
		return employees[i].FirstName < employees[j].FirstName
	})
	return employees, nil
}

func (s *Service) Update(organizationID, payrollID, divisionID, employeeID uuid.UUID, params UpdateParams) (*Employee, error) {
	if !anyFieldSet(params) {
		return nil, internal.NewValidationError("no fields supplied for update", internal.ErrCodeNoFields)
	}

	existing, err := s.Get(organizationID, payrollID, divisionID, employeeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if params.JobID != nil {
		if err := s.ensureJobBelongs(organizationID, payrollID, *params.JobID); err != nil {
			return nil, err
		}
	}
	if params.BankID != nil {
		if err := s.ensureBankBelongs(organizationID, *params.BankID); err != nil {
			return nil, err
		}
	}

	if params.Hours != nil {
		if err := validateHours(*params.Hours); err != nil {
			return nil, err
		}
	}

	// the termination bound is checked against the hire date that will be
	// stored, which may itself change in this update
	hireDate := existing.HireDate
	if params.HireDate != nil {
		hireDate = *params.HireDate
	}
	termination := existing.TerminationDate
	if params.TerminationDate.Present {
		termination = params.TerminationDate.Ptr()
	}
	if err := validateTerminationDate(hireDate, termination); err != nil {
		return nil, err
	}

	fields := UpdateFields{
		DateOfBirth:     params.DateOfBirth,
		HireDate:        params.HireDate,
		TerminationDate: params.TerminationDate,
		JobID:           params.JobID,
		BankID:          params.BankID,
		Hours:           params.Hours,
	}
	for _, f := range []struct {
		src   *string
		dst   **string
		field string
	}{
		{params.IDNumber, &fields.IDNumber, "employee id number"},
		{params.LastName, &fields.LastName, "employee last name"},
		{params.FirstName, &fields.FirstName, "employee first name"},
		{params.Address, &fields.Address, "employee address"},
		{params.Phone, &fields.Phone, "employee phone"},
		{params.PlaceOfBirth, &fields.PlaceOfBirth, "employee place of birth"},
		{params.Nationality, &fields.Nationality, "employee nationality"},
		{params.MaritalStatus, &fields.MaritalStatus, "employee marital status"},
		{params.Gender, &fields.Gender, "employee gender"},
		{params.Classification, &fields.Classification, "employee classification"},
		{params.BankAccount, &fields.BankAccount, "employee bank account"},
		{params.Status, &fields.Status, "employee status"},
	} {
		if f.src == nil {
			continue
		}
		normalized, err := normalizeField(*f.src, f.field)
		if err != nil {
			return nil, err
		}
		*f.dst = &normalized
	}

	record, err := s.repo.Update(employeeID.String(), fields)
	if err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) Delete(organizationID, payrollID, divisionID, employeeID uuid.UUID) (bool, error) {
	existing, err := s.Get(organizationID, payrollID, divisionID, employeeID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	removed, err := s.repo.Delete(employeeID.String())
	if err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", employeeID)
		return false, err
	}
	return removed, nil
}

func (s *Service) ensureDivisionAccessible(organizationID, payrollID, divisionID uuid.UUID) error {
	d, err := s.divisions.Get(organizationID, payrollID, divisionID)
	if err != nil {
		return err
	}
	if d == nil {
		return internal.NewNotFoundError(
			fmt.Sprintf("division %s not found for payroll %s in organization %s", divisionID, payrollID, organizationID),
			internal.ErrCodeDivisionNotFound,
		)
	}
	return nil
}

func (s *Service) ensureJobBelongs(organizationID, payrollID, jobID uuid.UUID) error {
	j, err := s.jobs.Get(organizationID, payrollID, jobID)
	if err != nil {
		return err
	}
	if j == nil {
		return internal.NewNotFoundError(
			fmt.Sprintf("job %s not found for payroll %s", jobID, payrollID),
			internal.ErrCodeJobNotFound,
		)
	}
	return nil
}

func (s *Service) ensureBankBelongs(organizationID, bankID uuid.UUID) error {
	b, err := s.banks.Get(organizationID, bankID)
	if err != nil {
		return err
	}
	if b == nil {
		return internal.NewNotFoundError(
			fmt.Sprintf("bank %s not found for organization %s", bankID, organizationID),
			internal.ErrCodeBankNotFound,
		)
	}
	return nil
}

func anyFieldSet(params UpdateParams) bool {
	return params.IDNumber != nil || params.LastName != nil || params.FirstName != nil ||
		params.Address != nil || params.Phone != nil || params.PlaceOfBirth != nil ||
		params.DateOfBirth != nil || params.Nationality != nil || params.MaritalStatus != nil ||
		params.Gender != nil || params.HireDate != nil || params.TerminationDate.Present ||
		params.Classification != nil || params.JobID != nil || params.BankID != nil ||
		params.BankAccount != nil || params.Status != nil || params.Hours != nil
}

// A zero Date means the field was absent from the request body. Dates
// the repository stores as NOT NULL must be supplied explicitly.
func validateRequiredDate(date internal.Date, field string) error {
	if date.IsZero() {
		return internal.NewValidationError(field+" is required", internal.ErrCodeMissingDate)
	}
	return nil
}

func validateHours(hours int) error {
	if hours < 0 {
		return internal.NewValidationError("hours cannot be negative", internal.ErrCodeInvalidHours)
	}
	return nil
}

func validateTerminationDate(hireDate internal.Date, terminationDate *internal.Date) error {
	if terminationDate == nil {
		return nil
	}
	if terminationDate.Before(hireDate) {
		return internal.NewValidationError("termination date cannot be before hire date", internal.ErrCodeInvalidDateRange)
	}
	return nil
}

func normalizeField(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", internal.NewValidationError(field+" cannot be empty", internal.ErrCodeEmptyField)
	}
	return trimmed, nil
}
