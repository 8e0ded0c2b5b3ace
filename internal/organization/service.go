package organization

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	orgDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/organization"
)

type CreateParams struct {
	Name string
}

type UpdateParams struct {
	Name *string
}

// UpdateFields carries only the columns an update touches; absent fields stay
// untouched in storage.
type UpdateFields struct {
	Name *string
}

type RepositoryAPI interface {
	Insert(record *orgDatamodel.Organization) error
	Fetch(id string) (*orgDatamodel.Organization, error)
	FetchAll() ([]*orgDatamodel.Organization, error)
	Update(id string, fields UpdateFields) (*orgDatamodel.Organization, error)
	Delete(id string) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(params CreateParams) (*Organization, error) {
	name, err := normalizeName(params.Name)
	if err != nil {
		return nil, err
	}

	record := &orgDatamodel.Organization{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := s.repo.Insert(record); err != nil {
		s.logger.Error("failed to insert organization", "error", err)
		return nil, err
	}

	return FromDataModel(record)
}

// Get returns nil without an error when the id does not resolve; absence is
// not an error at this layer.
func (s *Service) Get(id uuid.UUID) (*Organization, error) {
	record, err := s.repo.Fetch(id.String())
	if err != nil {
		s.logger.Error("failed to fetch organization", "error", err, "organization_id", id)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) List() ([]*Organization, error) {
	records, err := s.repo.FetchAll()
	if err != nil {
		s.logger.Error("failed to list organizations", "error", err)
		return nil, err
	}

	organizations := make([]*Organization, 0, len(records))
	for _, record := range records {
		org, err := FromDataModel(record)
		if err != nil {
			return nil, err
		}
		organizations = append(organizations, org)
	}

	sort.Slice(organizations, func(i, j int) bool {
		return organizations[i].Name < organizations[j].Name
	})
	return organizations, nil
}

func (s *Service) Update(id uuid.UUID, params UpdateParams) (*Organization, error) {
	if params.Name == nil {
		return nil, internal.NewValidationError("no fields supplied for update", internal.ErrCodeNoFields)
	}

	name, err := normalizeName(*params.Name)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Update(id.String(), UpdateFields{Name: &name})
	if err != nil {
		s.logger.Error("failed to update organization", "error", err, "organization_id", id)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

// Delete reports whether an organization existed; deleting a missing id is
// not an error.
func (s *Service) Delete(id uuid.UUID) (bool, error) {
	removed, err := s.repo.Delete(id.String())
	if err != nil {
		s.logger.Error("failed to delete organization", "error", err, "organization_id", id)
		return false, err
	}
	return removed, nil
}

func normalizeName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", internal.NewValidationError("organization name cannot be empty", internal.ErrCodeEmptyField)
	}
	return name, nil
}
