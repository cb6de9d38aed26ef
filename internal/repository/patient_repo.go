package repository

import (
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/models"

	"go.uber.org/zap"
)

// PatientDataset names the patient dataset in outcomes and logs.
const PatientDataset = "Patient"

type PatientRepository struct {
	*RecordStore[models.Patient]
}

// NewPatientRepo decodes a patient table. A nil table gives an empty store.
// Rooms shared by two patients are logged; the first row wins room lookups.
func NewPatientRepo(table *dataset.Table, logger *zap.Logger) (*PatientRepository, error) {
	if table == nil {
		return &PatientRepository{newRecordStore[models.Patient](PatientDataset, nil, true)}, nil
	}

	records := make([]models.Patient, 0, table.Count())
	rooms := make(map[string]string)
	for i, row := range table.All() {
		d := newRowDecoder(row, i)
		p := models.Patient{
			PatientID:         d.str("patient_id"),
			PatientName:       d.str("patient_name"),
			Age:               d.int("age"),
			Gender:            d.str("gender"),
			RoomNumber:        d.str("room_number"),
			Floor:             d.str("floor"),
			Building:          d.str("building"),
			Disease:           d.str("disease"),
			AdmittedDate:      d.str("admitted_date"),
			AttendingDoctorID: d.str("attending_doctor_id"),
			RelativeName:      d.str("relative_name"),
			RelativeContact:   d.str("relative_contact"),
			DirectionToRoom:   d.str("direction_to_room"),
		}
		if d.err != nil {
			return nil, d.err
		}

		if other, ok := rooms[p.RoomNumber]; ok && p.RoomNumber != "" {
			logger.Warn("Room assigned to more than one patient",
				zap.String("room", p.RoomNumber),
				zap.String("first", other),
				zap.String("second", p.PatientName),
			)
		} else {
			rooms[p.RoomNumber] = p.PatientName
		}

		records = append(records, p)
	}
	return &PatientRepository{newRecordStore(PatientDataset, records, false)}, nil
}

// LoadPatients reads the patient source.
func LoadPatients(src dataset.Source, logger *zap.Logger) (*PatientRepository, error) {
	table, err := readSource(src, PatientDataset, logger)
	if err != nil {
		return nil, err
	}
	return NewPatientRepo(table, logger)
}
