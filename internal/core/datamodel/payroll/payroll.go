package payroll

type Payroll struct {
	ID             string `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name;not null"`
	Description    string `gorm:"column:description;not null"`
	OrganizationID string `gorm:"column:organization_id;index;not null"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
