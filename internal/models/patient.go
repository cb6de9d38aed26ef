package models

// Patient is a currently admitted patient. RoomNumber is expected to be unique.
type Patient struct {
	ID                uint   `gorm:"primaryKey" json:"-"`
	PatientID         string `gorm:"size:32;index" json:"patient_id,omitempty"`
	PatientName       string `gorm:"size:255;not null" json:"patient_name"`
	Age               int    `json:"age"`
	Gender            string `gorm:"size:20" json:"gender"`
	RoomNumber        string `gorm:"size:50;index" json:"room_number"`
	Floor             string `gorm:"size:100" json:"floor"`
	Building          string `gorm:"size:100" json:"building"`
	Disease           string `gorm:"size:255" json:"disease"`
	AdmittedDate      string `gorm:"size:10" json:"admitted_date"`
	AttendingDoctorID string `gorm:"size:32;index" json:"attending_doctor_id"`
	RelativeName      string `gorm:"size:255" json:"relative_name"`
	RelativeContact   string `gorm:"size:50" json:"relative_contact"`
	DirectionToRoom   string `gorm:"type:text" json:"direction_to_room"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// PatientDirections is how to reach a patient's room.
type PatientDirections struct {
	PatientName string `json:"patient_name"`
	RoomNumber  string `json:"room_number"`
	Floor       string `json:"floor"`
	Building    string `json:"building"`
	Directions  string `json:"directions"`
}
