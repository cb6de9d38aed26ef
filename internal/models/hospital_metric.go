package models

import "hospital-reception-backend/pkg/geo"

// HospitalMetric is one row of the hospital time series: a hospital on a date.
// (hospital_id, date) is unique; hospital_id and hospital_name are 1:1.
type HospitalMetric struct {
	HospitalID   string     `gorm:"primaryKey;size:32" json:"hospital_id"`
	Date         string     `gorm:"primaryKey;size:10" json:"date"`
	HospitalName string     `gorm:"size:255;not null;index" json:"hospital_name"`
	Region       string     `gorm:"size:100" json:"region"`
	Location     string     `gorm:"size:255" json:"location"`
	PlaceLabel   string     `gorm:"size:255" json:"place_label,omitempty"`
	Coordinates  *geo.Point `gorm:"-" json:"coordinates,omitempty"`

	// Beds and ICU
	BedCapacity     int `json:"bed_capacity"`
	BedsOccupied    int `json:"beds_occupied"`
	BedsAvailable   int `json:"beds_available"`
	ICUBedsTotal    int `gorm:"column:icu_beds_total" json:"icu_beds_total"`
	ICUBedsOccupied int `gorm:"column:icu_beds_occupied" json:"icu_beds_occupied"`

	// Ventilators
	VentilatorsTotal     int `json:"ventilators_total"`
	VentilatorsInUse     int `json:"ventilators_in_use"`
	VentilatorsAvailable int `json:"ventilators_available"`

	// Staff
	DoctorsTotal        int `json:"doctors_total"`
	DoctorsAvailable    int `json:"doctors_available"`
	NursesTotal         int `json:"nurses_total"`
	NursesAvailable     int `json:"nurses_available"`
	ParamedicsTotal     int `json:"paramedics_total"`
	ParamedicsAvailable int `json:"paramedics_available"`

	// Patient activity
	PatientAdmissions int `json:"patient_admissions"`
	PatientDischarges int `json:"patient_discharges"`
	EmergencyVisits   int `json:"emergency_visits"`
	SurgeryCount      int `json:"surgery_count"`

	// Infectious cases
	CovidCases           int `json:"covid_cases"`
	FluCases             int `json:"flu_cases"`
	OtherInfectiousCases int `json:"other_infectious_cases"`

	BurnoutRiskScore       float64 `json:"burnout_risk_score"`
	AvgPatientSatisfaction float64 `json:"avg_patient_satisfaction"`
}

// TableName specifies the table name for HospitalMetric model
func (HospitalMetric) TableName() string {
	return "hospital_metrics"
}

// HospitalSummary is the distinct identity of a hospital across its dates.
type HospitalSummary struct {
	HospitalID   string     `json:"hospital_id"`
	HospitalName string     `json:"hospital_name"`
	Location     string     `json:"location"`
	PlaceLabel   string     `json:"place_label,omitempty"`
	Coordinates  *geo.Point `json:"coordinates,omitempty"`
}

// HospitalLocation is a hospital resolved to coordinates.
type HospitalLocation struct {
	HospitalID   string  `json:"hospital_id"`
	HospitalName string  `json:"hospital_name"`
	Location     string  `json:"location"`
	PlaceLabel   string  `json:"place_label,omitempty"`
	Region       string  `json:"region"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Point returns the coordinates of the location.
func (l HospitalLocation) Point() geo.Point {
	return geo.Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

// HospitalDistance is the great-circle distance between two hospitals.
type HospitalDistance struct {
	FromHospital    string    `json:"from_hospital"`
	ToHospital      string    `json:"to_hospital"`
	DistanceKm      float64   `json:"distance_km"`
	FromCoordinates geo.Point `json:"from_coordinates"`
	ToCoordinates   geo.Point `json:"to_coordinates"`
}

// DistanceMatrix lists the distance of every distinct pair of hospitals.
type DistanceMatrix struct {
	TotalPairs int                `json:"total_pairs"`
	Distances  []HospitalDistance `json:"distances"`
}

// DateRange summarises the distinct dates present in the time series.
type DateRange struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	TotalDays int      `json:"total_days"`
	AllDates  []string `json:"all_dates"`
}

// DatedValue is one point of a single-column series.
type DatedValue struct {
	Date  string `json:"date"`
	Value any    `json:"value"`
}

// ColumnValue is a metric read for a hospital: Value when pinned to a date, Values otherwise.
type ColumnValue struct {
	HospitalName string       `json:"hospital_name"`
	Column       string       `json:"column"`
	Date         string       `json:"date,omitempty"`
	Value        any          `json:"value,omitempty"`
	Values       []DatedValue `json:"values,omitempty"`
}
