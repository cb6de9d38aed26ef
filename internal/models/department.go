package models

// Department is a hospital department and where to find it.
type Department struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	DepartmentID     string `gorm:"size:32;index" json:"department_id,omitempty"`
	DepartmentName   string `gorm:"size:255;not null" json:"department_name"`
	Floor            string `gorm:"size:100" json:"floor"`
	Building         string `gorm:"size:100" json:"building"`
	ContactExtension string `gorm:"size:50" json:"contact_extension"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
