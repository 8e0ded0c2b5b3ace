package bank

type Bank struct {
	ID             string `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name;not null"`
	OrganizationID string `gorm:"column:organization_id;index;not null"`
}

func (Bank) TableName() string {
	return "banks"
}
