package employee

import (
	"github.com/frahmantamala/payroll-management/internal"
)

type Employee struct {
	ID              string         `gorm:"column:id;primaryKey"`
	IDNumber        string         `gorm:"column:id_number;not null"`
	LastName        string         `gorm:"column:last_name;not null"`
	FirstName       string         `gorm:"column:first_name;not null"`
	Address         string         `gorm:"column:address;not null"`
	Phone           string         `gorm:"column:phone;not null"`
	PlaceOfBirth    string         `gorm:"column:place_of_birth;not null"`
	DateOfBirth     internal.Date  `gorm:"column:date_of_birth;type:date;not null"`
	Nationality     string         `gorm:"column:nationality;not null"`
	MaritalStatus   string         `gorm:"column:marital_status;not null"`
	Gender          string         `gorm:"column:gender;not null"`
	HireDate        internal.Date  `gorm:"column:hire_date;type:date;not null"`
	TerminationDate *internal.Date `gorm:"column:termination_date;type:date"`
	Classification  string         `gorm:"column:classification;not null"`
	JobID           string         `gorm:"column:job_id;index;not null"`
	BankID          string         `gorm:"column:bank_id;index;not null"`
	BankAccount     string         `gorm:"column:bank_account;not null"`
	Status          string         `gorm:"column:status;not null"`
	Hours           int            `gorm:"column:hours;not null"`
	DivisionID      string         `gorm:"column:division_id;index;not null"`
	PayrollID       string         `gorm:"column:payroll_id;index;not null"`
}

func (Employee) TableName() string {
	return "employees"
}
