package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	jobDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/job"
	"github.com/frahmantamala/payroll-management/internal/job"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) job.RepositoryAPI {
	return &JobRepository{db: db}
}

func (r *JobRepository) Insert(record *jobDatamodel.Job) error {
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewDatabaseError("failed to insert job", err)
	}
	return nil
}

func (r *JobRepository) Fetch(id string) (*jobDatamodel.Job, error) {
	var record jobDatamodel.Job
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewDatabaseError("failed to fetch job", err)
	}
	return &record, nil
}

func (r *JobRepository) FetchByPayroll(payrollID string) ([]*jobDatamodel.Job, error) {
	var records []*jobDatamodel.Job
	err := r.db.Where("payroll_id = ?", payrollID).Find(&records).Error
	if err != nil {
		return nil, internal.NewDatabaseError("failed to fetch jobs", err)
	}
	return records, nil
}

func (r *JobRepository) Update(id string, fields job.UpdateFields) (*jobDatamodel.Job, error) {
	updates := map[string]interface{}{}
	if fields.JobTitle != nil {
		updates["job_title"] = *fields.JobTitle
	}
	if fields.Salary != nil {
		updates["salary"] = *fields.Salary
	}

	if len(updates) > 0 {
		err := r.db.Model(&jobDatamodel.Job{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, internal.NewDatabaseError("failed to update job", err)
		}
	}

	return r.Fetch(id)
}

func (r *JobRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&jobDatamodel.Job{})
	if result.Error != nil {
		return false, internal.NewDatabaseError("failed to delete job", result.Error)
	}
	return result.RowsAffected > 0, nil
}
