package job

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	jobDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/job"
)

type CreateParams struct {
	JobTitle string
	Salary   float64
}

type UpdateParams struct {
	JobTitle *string
	Salary   *float64
}

type UpdateFields struct {
	JobTitle *string
	Salary   *float64
}

type RepositoryAPI interface {
	Insert(record *jobDatamodel.Job) error
	Fetch(id string) (*jobDatamodel.Job, error)
	FetchByPayroll(payrollID string) ([]*jobDatamodel.Job, error)
	Update(id string, fields UpdateFields) (*jobDatamodel.Job, error)
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

func (s *Service) Create(organizationID, payrollID uuid.UUID, params CreateParams) (*Job, error) {
	if err := s.payrolls.EnsureBelongsToOrganization(organizationID, payrollID); err != nil {
		return nil, err
	}
	jobTitle, err := normalizeTitle(params.JobTitle)
	if err != nil {
		return nil, err
	}
	if err := validateSalary(params.Salary); err != nil {
		return nil, err
	}

	record := &jobDatamodel.Job{
		ID:        uuid.New().String(),
		JobTitle:  jobTitle,
		Salary:    params.Salary,
		PayrollID: payrollID.String(),
	}
	if err := s.repo.Insert(record); err != nil {
		s.logger.Error("failed to insert job", "error", err, "payroll_id", payrollID)
		return nil, err
	}

	return FromDataModel(record)
}

func (s *Service) Get(organizationID, payrollID, jobID uuid.UUID) (*Job, error) {
	if err := s.payrolls.EnsureBelongsToOrganization(organizationID, payrollID); err != nil {
		return nil, err
	}

	record, err := s.repo.Fetch(jobID.String())
	if err != nil {
		s.logger.Error("failed to fetch job", "error", err, "job_id", jobID)
		return nil, err
	}
	if record == nil || record.PayrollID != payrollID.String() {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) List(organizationID, payrollID uuid.UUID) ([]*Job, error) {
	if err := s.payrolls.EnsureBelongsToOrganization(organizationID, payrollID); err != nil {
		return nil, err
	}

	records, err := s.repo.FetchByPayroll(payrollID.String())
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err, "payroll_id", payrollID)
		return nil, err
	}

	jobs := make([]*Job, 0, len(records))
	for _, record := range records {
		j, err := FromDataModel(record)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].JobTitle < jobs[j].JobTitle
	})
	return jobs, nil
}

func (s *Service) Update(organizationID, payrollID, jobID uuid.UUID, params UpdateParams) (*Job, error) {
	if params.JobTitle == nil && params.Salary == nil {
		return nil, internal.NewValidationError("no fields supplied for update", internal.ErrCodeNoFields)
	}

	existing, err := s.Get(organizationID, payrollID, jobID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	fields := UpdateFields{}
	if params.JobTitle != nil {
		jobTitle, err := normalizeTitle(*params.JobTitle)
		if err != nil {
			return nil, err
		}
		fields.JobTitle = &jobTitle
	}
	if params.Salary != nil {
		if err := validateSalary(*params.Salary); err != nil {
			return nil, err
		}
		fields.Salary = params.Salary
	}

	record, err := s.repo.Update(jobID.String(), fields)
	if err != nil {
		s.logger.Error("failed to update job", "error", err, "job_id", jobID)
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record)
}

func (s *Service) Delete(organizationID, payrollID, jobID uuid.UUID) (bool, error) {
	existing, err := s.Get(organizationID, payrollID, jobID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	removed, err := s.repo.Delete(jobID.String())
	if err != nil {
		s.logger.Error("failed to delete job", "error", err, "job_id", jobID)
		return false, err
	}
	return removed, nil
}

func normalizeTitle(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", internal.NewValidationError("job title cannot be empty", internal.ErrCodeEmptyField)
	}
	return trimmed, nil
}

func validateSalary(value float64) error {
	if value <= 0 {
		return internal.NewValidationError("salary must be greater than zero", internal.ErrCodeInvalidSalary)
	}
	return nil
}
