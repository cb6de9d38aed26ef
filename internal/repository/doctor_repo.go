package repository

import (
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/models"

	"go.uber.org/zap"
)

// DoctorDataset names the doctor dataset in outcomes and logs.
const DoctorDataset = "Doctor"

type DoctorRepository struct {
	*RecordStore[models.Doctor]
}

// NewDoctorRepo decodes a doctor table, parsing available_days into a weekday set.
// Unrecognised day tokens are logged and skipped; malformed numbers fail the load.
func NewDoctorRepo(table *dataset.Table, logger *zap.Logger) (*DoctorRepository, error) {
	if table == nil {
		return &DoctorRepository{newRecordStore[models.Doctor](DoctorDataset, nil, true)}, nil
	}

	records := make([]models.Doctor, 0, table.Count())
	for i, row := range table.All() {
		d := newRowDecoder(row, i)
		doc := models.Doctor{
			DoctorID:           d.str("doctor_id"),
			DoctorName:         d.str("doctor_name"),
			Specialization:     d.str("specialization"),
			DepartmentID:       d.str("department_id"),
			YearsExperience:    d.int("years_experience"),
			AvailableDays:      d.str("available_days"),
			AvailableTimeStart: d.str("available_time_start"),
			AvailableTimeEnd:   d.str("available_time_end"),
			ContactNumber:      d.str("contact_number"),
		}
		if d.err != nil {
			return nil, d.err
		}

		days, err := models.ParseWeekdaySet(doc.AvailableDays)
		if err != nil {
			logger.Warn("Doctor availability has unrecognised days",
				zap.String("doctor", doc.DoctorName),
				zap.Int("row", d.line),
				zap.Error(err),
			)
		}
		doc.AvailableWeekdays = days

		records = append(records, doc)
	}
	return &DoctorRepository{newRecordStore(DoctorDataset, records, false)}, nil
}

// LoadDoctors reads the doctor source.
func LoadDoctors(src dataset.Source, logger *zap.Logger) (*DoctorRepository, error) {
	table, err := readSource(src, DoctorDataset, logger)
	if err != nil {
		return nil, err
	}
	return NewDoctorRepo(table, logger)
}
