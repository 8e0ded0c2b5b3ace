package bank

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	bankDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/bank"
	"github.com/frahmantamala/payroll-management/internal/organization"
)

type CreateParams struct {
	Name string
}

type UpdateParams struct {
	Name *string
}

type UpdateFields struct {
	Name *string
}

type RepositoryAPI interface {
	Insert(record *bankDatamodel.Bank) error
	Fetch(id string) (*bankDatamodel.Bank, error)
	FetchByOrganization(organizationID string) ([]*bankDatamodel.Bank, error)
	Update(id string, fields UpdateFields) (*bankDatamodel.Bank, error)
	Delete(id string) (bool, error)
}

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

func (s *Service) Create(organizationID uuid.UUID, params CreateParams) (*Bank, error) {
	name, err := normalizeName(params.Name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOrganizationExists(organizationID); err != nil {
		return nil, err
	}

	record := &bankDatamodel.Bank{
		ID:             uuid.New().String(),
		Name:           name,
		OrganizationID: organizationID.String(),
	}
	if err := s.repo.Insert(record); err != nil {
		s.logger.Error("failed to insert bank", "error", err, "organization_id", organizationID)
		return nil, err
	}

	return FromDataModel(record)
}

// Get filters out banks owned by another organization; a mismatch reads the
// same as absence.
func (s *Service) Get(organizationID, bankID uuid.UUID) (*Bank, error) {
	record, err := s.repo.Fetch(bankID.String())
	if err != nil {
		s.logger.Error("failed to fetch bank", "error", err, "bank_id", bankID)
		return nil, err
	}
	if record == nil || record.OrganizationID != organizationID.String() {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) List(organizationID uuid.UUID) ([]*Bank, error) {
	if err := s.ensureOrganizationExists(organizationID); err != nil {
		return nil, err
	}

	records, err := s.repo.FetchByOrganization(organizationID.String())
	if err != nil {
		s.logger.Error("failed to list banks", "error", err, "organization_id", organizationID)
		return nil, err
	}

	banks := make([]*Bank, 0, len(records))
	for _, record := range records {
		b, err := FromDataModel(record)
		if err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}

	sort.Slice(banks, func(i, j int) bool {
		return banks[i].Name < banks[j].Name
	})
	return banks, nil
}

func (s *Service) Update(organizationID, bankID uuid.UUID, params UpdateParams) (*Bank, error) {
	if params.Name == nil {
		return nil, internal.NewValidationError("no fields supplied for update", internal.ErrCodeNoFields)
	}

	existing, err := s.Get(organizationID, bankID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	name, err := normalizeName(*params.Name)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Update(bankID.String(), UpdateFields{Name: &name})
	if err != nil {
		s.logger.Error("failed to update bank", "error", err, "bank_id", bankID)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) Delete(organizationID, bankID uuid.UUID) (bool, error) {
	existing, err := s.Get(organizationID, bankID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	removed, err := s.repo.Delete(bankID.String())
	if err != nil {
		s.logger.Error("failed to delete bank", "error", err, "bank_id", bankID)
		return false, err
	}
	return removed, nil
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

func normalizeName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", internal.NewValidationError("bank name cannot be empty", internal.ErrCodeEmptyField)
	}
	return name, nil
}
