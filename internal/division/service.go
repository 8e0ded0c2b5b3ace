package division

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	divisionDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/division"
)

type CreateParams struct {
	Name             string
	Description      string
	BudgetCode       string
	ParentDivisionID *uuid.UUID
}

type UpdateParams struct {
	Name        *string
	Description *string
	BudgetCode  *string
	// ParentDivisionID distinguishes absent (keep), null (detach) and value
	// (reattach).
	ParentDivisionID internal.Patch[uuid.UUID]
}

type UpdateFields struct {
	Name             *string
	Description      *string
	BudgetCode       *string
	ParentDivisionID internal.Patch[uuid.UUID]
}

type RepositoryAPI interface {
	Insert(record *divisionDatamodel.Division) error
	Fetch(id string) (*divisionDatamodel.Division, error)
	FetchByPayroll(payrollID string) ([]*divisionDatamodel.Division, error)
	Update(id string, fields UpdateFields) (*divisionDatamodel.Division, error)
	Delete(id string) (bool, error)
}

type PayrollAPI interface {
	EnsureBelongsToOrganization(organizationID, payrollID uuid.UUID) error
}

type Service struct {
	repo     RepositoryAPI
	payrolls PayrollAPI
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, payrolls PayrollAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		payrolls: payrolls,
		logger:   logger,
	}
}

func (s *Service) Create(organizationID, payrollID uuid.UUID, params CreateParams) (*Division, error) {
	name, err := normalizeField(params.Name, "division name")
	if err != nil {
		return nil, err
	}
	description, err := normalizeField(params.Description, "division description")
	if err != nil {
		return nil, err
	}
	budgetCode, err := normalizeField(params.BudgetCode, "division budget code")
	if err != nil {
		return nil, err
	}
	if err := s.payrolls.EnsureBelongsToOrganization(organizationID, payrollID); err != nil {
		return nil, err
	}
	if err := s.validateParent(params.ParentDivisionID, payrollID, nil); err != nil {
		return nil, err
	}

	record := &divisionDatamodel.Division{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		BudgetCode:  budgetCode,
		PayrollID:   payrollID.String(),
	}
	if params.ParentDivisionID != nil {
		parent := params.ParentDivisionID.String()
		record.ParentDivisionID = &parent
	}
	if err := s.repo.Insert(record); err != nil {
		s.logger.Error("failed to insert division", "error", err, "payroll_id", payrollID)
		return nil, err
	}

	return FromDataModel(record)
}

func (s *Service) Get(organizationID, payrollID, divisionID uuid.UUID) (*Division, error) {
	if err := s.payrolls.EnsureBelongsToOrganization(organizationID, payrollID); err != nil {
		return nil, err
	}

	record, err := s.repo.Fetch(divisionID.String())
	if err != nil {
		s.logger.Error("failed to fetch division", "error", err, "division_id", divisionID)
		return nil, err
	}
	if record == nil || record.PayrollID != payrollID.String() {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) List(organizationID, payrollID uuid.UUID) ([]*Division, error) {
	if err := s.payrolls.EnsureBelongsToOrganization(organizationID, payrollID); err != nil {
		return nil, err
	}

	records, err := s.repo.FetchByPayroll(payrollID.String())
	if err != nil {
		s.logger.Error("failed to list divisions", "error", err, "payroll_id", payrollID)
		return nil, err
	}

	divisions := make([]*Division, 0, len(records))
	for _, record := range records {
		d, err := FromDataModel(record)
		if err != nil {
			return nil, err
		}
		divisions = append(divisions, d)
	}

	sort.Slice(divisions, func(i, j int) bool {
		return divisions[i].Name < divisions[j].Name
	})
	return divisions, nil
}

func (s *Service) Update(organizationID, payrollID, divisionID uuid.UUID, params UpdateParams) (*Division, error) {
	if params.Name == nil && params.Description == nil && params.BudgetCode == nil &&
		!params.ParentDivisionID.Present {
		return nil, internal.NewValidationError("no fields supplied for update", internal.ErrCodeNoFields)
	}

	existing, err := s.Get(organizationID, payrollID, divisionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if params.ParentDivisionID.Present {
		if err := s.validateParent(params.ParentDivisionID.Ptr(), payrollID, &divisionID); err != nil {
			return nil, err
		}
	}

	fields := UpdateFields{ParentDivisionID: params.ParentDivisionID}
	if params.Name != nil {
		name, err := normalizeField(*params.Name, "division name")
		if err != nil {
			return nil, err
		}
		fields.Name = &name
	}
	if params.Description != nil {
		description, err := normalizeField(*params.Description, "division description")
		if err != nil {
			return nil, err
		}
		fields.Description = &description
	}
	if params.BudgetCode != nil {
		budgetCode, err := normalizeField(*params.BudgetCode, "division budget code")
		if err != nil {
			return nil, err
		}
		fields.BudgetCode = &budgetCode
	}

	record, err := s.repo.Update(divisionID.String(), fields)
	if err != nil {
		s.logger.Error("failed to update division", "error", err, "division_id", divisionID)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) Delete(organizationID, payrollID, divisionID uuid.UUID) (bool, error) {
	existing, err := s.Get(organizationID, payrollID, divisionID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	removed, err := s.repo.Delete(divisionID.String())
	if err != nil {
		s.logger.Error("failed to delete division", "error", err, "division_id", divisionID)
		return false, err
	}
	return removed, nil
}

// validateParent checks one hop only: the parent must exist, belong to the
// target payroll and not be the division itself. Multi-hop cycles are not
// walked.
func (s *Service) validateParent(parentDivisionID *uuid.UUID, targetPayrollID uuid.UUID, divisionID *uuid.UUID) error {
	if parentDivisionID == nil {
		return nil
	}

	if divisionID != nil && *parentDivisionID == *divisionID {
		return internal.NewValidationError("division cannot be its own parent", internal.ErrCodeSelfParent)
	}

	record, err := s.repo.Fetch(parentDivisionID.String())
	if err != nil {
		return err
	}
	if record == nil {
		return internal.NewNotFoundError(
			fmt.Sprintf("parent division %s not found", parentDivisionID),
			internal.ErrCodeDivisionNotFound,
		)
	}

	if record.PayrollID != targetPayrollID.String() {
		return internal.NewValidationError("parent division must belong to the same payroll", internal.ErrCodeParentMismatch)
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
