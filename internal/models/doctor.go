package models

// Doctor is a staff physician with a weekly availability window.
type Doctor struct {
	ID                 uint       `gorm:"primaryKey" json:"-"`
	DoctorID           string     `gorm:"size:32;index" json:"doctor_id,omitempty"`
	DoctorName         string     `gorm:"size:255;not null" json:"doctor_name"`
	Specialization     string     `gorm:"size:100" json:"specialization"`
	DepartmentID       string     `gorm:"size:32;index" json:"department_id"`
	YearsExperience    int        `json:"years_experience"`
	AvailableDays      string     `gorm:"size:255" json:"available_days"`
	AvailableWeekdays  WeekdaySet `gorm:"column:available_weekdays" json:"available_weekdays"`
	AvailableTimeStart string     `gorm:"size:10" json:"available_time_start"`
	AvailableTimeEnd   string     `gorm:"size:10" json:"available_time_end"`
	ContactNumber      string     `gorm:"size:50" json:"contact_number"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
