package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	orgDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/organization"
	"github.com/frahmantamala/payroll-management/internal/organization"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) organization.RepositoryAPI {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Insert(record *orgDatamodel.Organization) error {
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewDatabaseError("failed to insert organization", err)
	}
	return nil
}

func (r *OrganizationRepository) Fetch(id string) (*orgDatamodel.Organization, error) {
	var record orgDatamodel.Organization
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewDatabaseError("failed to fetch organization", err)
	}
	return &record, nil
}

func (r *OrganizationRepository) FetchAll() ([]*orgDatamodel.Organization, error) {
	var records []*orgDatamodel.Organization
	if err := r.db.Find(&records).Error; err != nil {
		return nil, internal.NewDatabaseError("failed to fetch organizations", err)
	}
	return records, nil
}

func (r *OrganizationRepository) Update(id string, fields organization.UpdateFields) (*orgDatamodel.Organization, error) {
	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}

	if len(updates) > 0 {
		err := r.db.Model(&orgDatamodel.Organization{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, internal.NewDatabaseError("failed to update organization", err)
		}
	}

	return r.Fetch(id)
}

func (r *OrganizationRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&orgDatamodel.Organization{})
	if result.Error != nil {
		return false, internal.NewDatabaseError("failed to delete organization", result.Error)
	}
	return result.RowsAffected > 0, nil
}
