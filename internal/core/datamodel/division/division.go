package division

type Division struct {
	ID               string  `gorm:"column:id;primaryKey"`
	Name             string  `gorm:"column:name;not null"`
	Description      string  `gorm:"column:description;not null"`
	BudgetCode       string  `gorm:"column:budget_code;not null"`
	PayrollID        string  `gorm:"column:payroll_id;index;not null"`
	ParentDivisionID *string `gorm:"column:parent_division_id"`
}

func (Division) TableName() string {
	return "divisions"
}
