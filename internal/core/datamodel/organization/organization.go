package organization

type Organization struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (Organization) TableName() string {
	return "organizations"
}
