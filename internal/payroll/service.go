package payroll

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	payrollDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/payroll"
	"github.com/frahmantamala/payroll-management/internal/organization"
)

type CreateParams struct {
	Name        string
	Description string
}

type UpdateParams struct {
	Name           *string
	Description    *string
	OrganizationID *uuid.UUID
}

type UpdateFields struct {
	Name           *string
	Description    *string
	OrganizationID *string
}

type RepositoryAPI interface {
	Insert(record *payrollDatamodel.Payroll) error
	Fetch(id string) (*payrollDatamodel.Payroll, error)
	FetchByOrganization(organizationID string) ([]*payrollDatamodel.Payroll, error)
	Update(id string, fields UpdateFields) (*payrollDatamodel.Payroll, error)
	Delete(id string) (bool, error)
}

// OrganizationAPI is the slice of the organization service this package
// needs to validate ownership.
type OrganizationAPI interface {
	Get(id uuid.UUID) (*organization.Organization, error)
}

type Service struct {
	repo          RepositoryAPI
	organizations OrganizationAPI
	logger        *slog.Logger
}

func NewService(repo RepositoryAPI, organizations OrganizationAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		organizations: organizations,
		logger:        logger,
	}
}

func (s *Service) Create(organizationID uuid.UUID, params CreateParams) (*Payroll, error) {
	name, err := normalizeField(params.Name, "payroll name")
	if err != nil {
		return nil, err
	}
	description, err := normalizeField(params.Description, "payroll description")
	if err != nil {
		return nil, err
	}
	if err := s.ensureOrganizationExists(organizationID); err != nil {
		return nil, err
	}

	record := &payrollDatamodel.Payroll{
		ID:             uuid.New().String(),
		Name:           name,
		Description:    description,
		OrganizationID: organizationID.String(),
	}
	if err := s.repo.Insert(record); err != nil {
		s.logger.Error("failed to insert payroll", "error", err, "organization_id", organizationID)
		return nil, err
	}

	return FromDataModel(record)
}

// Get treats a payroll owned by another organization exactly like a missing
// one; callers cannot distinguish the two.
func (s *Service) Get(organizationID, payrollID uuid.UUID) (*Payroll, error) {
	record, err := s.repo.Fetch(payrollID.String())
	if err != nil {
		s.logger.Error("failed to fetch payroll", "error", err, "payroll_id", payrollID)
		return nil, err
	}
	if record == nil || record.OrganizationID != organizationID.String() {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) List(organizationID uuid.UUID) ([]*Payroll, error) {
	if err := s.ensureOrganizationExists(organizationID); err != nil {
		return nil, err
	}

	records, err := s.repo.FetchByOrganization(organizationID.String())
	if err != nil {
		s.logger.Error("failed to list payrolls", "error", err, "organization_id", organizationID)
		return nil, err
	}

	payrolls := make([]*Payroll, 0, len(records))
	for _, record := range records {
		p, err := FromDataModel(record)
		if err != nil {
			return nil, err
		}
		payrolls = append(payrolls, p)
	}

	sort.Slice(payrolls, func(i, j int) bool {
		return payrolls[i].Name < payrolls[j].Name
	})
	return payrolls, nil
}

func (s *Service) Update(organizationID, payrollID uuid.UUID, params UpdateParams) (*Payroll, error) {
	if params.Name == nil && params.Description == nil && params.OrganizationID == nil {
		return nil, internal.NewValidationError("no fields supplied for update", internal.ErrCodeNoFields)
	}

	existing, err := s.Get(organizationID, payrollID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	// moving a payroll requires the destination organization to exist
	if params.OrganizationID != nil {
		if err := s.ensureOrganizationExists(*params.OrganizationID); err != nil {
			return nil, err
		}
	}

	fields := UpdateFields{}
	if params.Name != nil {
		name, err := normalizeField(*params.Name, "payroll name")
		if err != nil {
			return nil, err
		}
		fields.Name = &name
	}
	if params.Description != nil {
		description, err := normalizeField(*params.Description, "payroll description")
		if err != nil {
			return nil, err
		}
		fields.Description = &description
	}
	if params.OrganizationID != nil {
		orgID := params.OrganizationID.String()
		fields.OrganizationID = &orgID
	}

	record, err := s.repo.Update(payrollID.String(), fields)
	if err != nil {
		s.logger.Error("failed to update payroll", "error", err, "payroll_id", payrollID)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) Delete(organizationID, payrollID uuid.UUID) (bool, error) {
	existing, err := s.Get(organizationID, payrollID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	removed, err := s.repo.Delete(payrollID.String())
	if err != nil {
		s.logger.Error("failed to delete payroll", "error", err, "payroll_id", payrollID)
		return false, err
	}
	return removed, nil
}

// EnsureBelongsToOrganization is the ownership check dependent services run
// before touching anything scoped under a payroll.
func (s *Service) EnsureBelongsToOrganization(organizationID, payrollID uuid.UUID) error {
	payroll, err := s.Get(organizationID, payrollID)
	if err != nil {
		return err
	}
	if payroll == nil {
		return internal.NewNotFoundError(
			fmt.Sprintf("payroll %s not found for organization %s", payrollID, organizationID),
			internal.ErrCodePayrollNotFound,
		)
	}
	return nil
}

func (s *Service) ensureOrganizationExists(organizationID uuid.UUID) error {
	org, err := s.organizations.Get(organizationID)
	if err != nil {
		return err
	}
	if org == nil {
		return internal.NewNotFoundError(
			fmt.Sprintf("organization %s not found", organizationID),
			internal.ErrCodeOrganizationNotFound,
		)
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
