package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/bank"
	bankDatamodel "github.com/frahmantamala/payroll-management/internal/core/datamodel/bank"
)

type BankRepository struct {
	db *gorm.DB
}

func NewBankRepository(db *gorm.DB) bank.RepositoryAPI {
	return &BankRepository{db: db}
}

func (r *BankRepository) Insert(record *bankDatamodel.Bank) error {
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewDatabaseError("failed to insert bank", err)
	}
	return nil
}

func (r *BankRepository) Fetch(id string) (*bankDatamodel.Bank, error) {
	var record bankDatamodel.Bank
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewDatabaseError("failed to fetch bank", err)
	}
	return &record, nil
}

func (r *BankRepository) FetchByOrganization(organizationID string) ([]*bankDatamodel.Bank, error) {
	var records []*bankDatamodel.Bank
	err := r.db.Where("organization_id = ?", organizationID).Find(&records).Error
	if err != nil {
		return nil, internal.NewDatabaseError("failed to fetch banks", err)
	}
	return records, nil
}

func (r *BankRepository) Update(id string, fields bank.UpdateFields) (*bankDatamodel.Bank, error) {
	updates := map[string]interface{}{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}

	if len(updates) > 0 {
		err := r.db.Model(&bankDatamodel.Bank{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, internal.NewDatabaseError("failed to update bank", err)
		}
	}

	return r.Fetch(id)
}

func (r *BankRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&bankDatamodel.Bank{})
	if result.Error != nil {
		return false, internal.NewDatabaseError("failed to delete bank", result.Error)
	}
	return result.RowsAffected > 0, nil
}
