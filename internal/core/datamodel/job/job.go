package job

type Job struct {
	ID        string  `gorm:"column:id;primaryKey"`
	JobTitle  string  `gorm:"column:job_title;not null"`
	Salary    float64 `gorm:"column:salary;not null"`
	PayrollID string  `gorm:"column:payroll_id;index;not null"`
}

func (Job) TableName() string {
	return "jobs"
}
