package job

import (
	"github.com/google/uuid"

	"github.com/frahmantamala/payroll-management/internal"
	jobDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/job"
)

type Job struct {
	ID        uuid.UUID `json:"id"`
	JobTitle  string    `json:"job_title"`
	Salary    float64   `json:"salary"`
	PayrollID uuid.UUID `json:"payroll_id"`
}

func ToDataModel(j *Job) *jobDatamodel.Job {
	return &jobDatamodel.Job{
		ID:        j.ID.String(),
		JobTitle:  j.JobTitle,
		Salary:    j.Salary,
		PayrollID: j.PayrollID.String(),
	}
}

func FromDataModel(record *jobDatamodel.Job) (*Job, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, internal.NewInternalError("stored job id is not a UUID", err)
	}
	payrollID, err := uuid.Parse(record.PayrollID)
	if err != nil {
		return nil, internal.NewInternalError("stored job payroll id is not a UUID", err)
	}
	return &Job{
		ID:        id,
		JobTitle:  record.JobTitle,
		Salary:    record.Salary,
		PayrollID: payrollID,
	}, nil
}
