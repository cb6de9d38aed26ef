package repository

import (
	"errors"
	"fmt"

	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/pkg/geo"

	"go.uber.org/zap"
)

// HospitalMetricDataset names the hospital time series in outcomes and logs.
const HospitalMetricDataset = "Hospital"

// HospitalMetricRepository is the in-memory hospital time series.
// Raw rows are kept next to the decoded records so any column stays addressable.
type HospitalMetricRepository struct {
	*RecordStore[models.HospitalMetric]
	columns []string
	raw     []dataset.Row
}

// NewHospitalMetricRepo decodes a metrics table. A nil table gives an empty store.
func NewHospitalMetricRepo(table *dataset.Table) (*HospitalMetricRepository, error) {
	if table == nil {
		return &HospitalMetricRepository{
			RecordStore: newRecordStore[models.HospitalMetric](HospitalMetricDataset, nil, true),
		}, nil
	}

	records := make([]models.HospitalMetric, 0, table.Count())
	seen := make(map[string]bool, table.Count())
	names := make(map[string]string)
	ids := make(map[string]string)

	for i, row := range table.All() {
		rec, err := decodeHospitalMetric(row, i)
		if err != nil {
			return nil, err
		}

		key := rec.HospitalID + "|" + rec.Date
		if seen[key] {
			return nil, fmt.Errorf("row %d: duplicate record for hospital %s on %s", i+2, rec.HospitalID, rec.Date)
		}
		seen[key] = true

		if name, ok := names[rec.HospitalID]; ok && name != rec.HospitalName {
			return nil, fmt.Errorf("row %d: hospital %s is named both %q and %q", i+2, rec.HospitalID, name, rec.HospitalName)
		}
		if id, ok := ids[rec.HospitalName]; ok && id != rec.HospitalID {
			return nil, fmt.Errorf("row %d: hospital name %q is used by both %s and %s", i+2, rec.HospitalName, id, rec.HospitalID)
		}
		names[rec.HospitalID] = rec.HospitalName
		ids[rec.HospitalName] = rec.HospitalID

		records = append(records, rec)
	}

	return &HospitalMetricRepository{
		RecordStore: newRecordStore(HospitalMetricDataset, records, false),
		columns:     append([]string(nil), table.Header...),
		raw:         table.All(),
	}, nil
}

// LoadHospitalMetrics reads the metrics source, running the location migration first when migrate is set.
func LoadHospitalMetrics(src dataset.Source, mapping dataset.LocationMapping, migrate bool, logger *zap.Logger) (*HospitalMetricRepository, error) {
	if !migrate {
		table, err := readSource(src, HospitalMetricDataset, logger)
		if err != nil {
			return nil, err
		}
		return NewHospitalMetricRepo(table)
	}

	table, result, err := dataset.MigrateLocations(src, mapping)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceMissing) {
			logger.Warn("Dataset source missing, starting with an empty store",
				zap.String("dataset", HospitalMetricDataset),
				zap.String("source", src.Name()),
			)
			return NewHospitalMetricRepo(nil)
		}
		return nil, fmt.Errorf("failed to load %s data: %w", HospitalMetricDataset, err)
	}
	if result.Changed() {
		logger.Info("Location columns added to hospital dataset",
			zap.String("source", result.Source),
			zap.Strings("columns", result.AddedColumns),
			zap.Int("rows", result.Rows),
		)
	}
	return NewHospitalMetricRepo(table)
}

// Columns returns the dataset header in file order.
func (r *HospitalMetricRepository) Columns() []string {
	return append([]string(nil), r.columns...)
}

// HasColumn reports whether name is a dataset column.
func (r *HospitalMetricRepository) HasColumn(name string) bool {
	for _, c := range r.columns {
		if c == name {
			return true
		}
	}
	return false
}

// RawMatching returns the source rows whose decoded record satisfies pred, in dataset order.
func (r *HospitalMetricRepository) RawMatching(pred func(models.HospitalMetric) bool) []dataset.Row {
	var out []dataset.Row
	for i, rec := range r.records {
		if pred(rec) {
			out = append(out, r.raw[i])
		}
	}
	return out
}

func decodeHospitalMetric(row dataset.Row, index int) (models.HospitalMetric, error) {
	d := newRowDecoder(row, index)

	m := models.HospitalMetric{
		HospitalID:   d.str("hospital_id"),
		HospitalName: d.str("hospital_name"),
		Date:         d.date("date"),
		Region:       d.str("region"),
		Location:     d.str(dataset.ColumnLocation),
		PlaceLabel:   d.str(dataset.ColumnPlaceLabel),

		BedCapacity:     d.int("bed_capacity"),
		BedsOccupied:    d.int("beds_occupied"),
		BedsAvailable:   d.int("beds_available"),
		ICUBedsTotal:    d.int("icu_beds_total"),
		ICUBedsOccupied: d.int("icu_beds_occupied"),

		VentilatorsTotal:     d.int("ventilators_total"),
		VentilatorsInUse:     d.int("ventilators_in_use"),
		VentilatorsAvailable: d.int("ventilators_available"),

		DoctorsTotal:        d.int("doctors_total"),
		DoctorsAvailable:    d.int("doctors_available"),
		NursesTotal:         d.int("nurses_total"),
		NursesAvailable:     d.int("nurses_available"),
		ParamedicsTotal:     d.int("paramedics_total"),
		ParamedicsAvailable: d.int("paramedics_available"),

		PatientAdmissions: d.int("patient_admissions"),
		PatientDischarges: d.int("patient_discharges"),
		EmergencyVisits:   d.int("emergency_visits"),
		SurgeryCount:      d.int("surgery_count"),

		CovidCases:           d.int("covid_cases"),
		FluCases:             d.int("flu_cases"),
		OtherInfectiousCases: d.int("other_infectious_cases"),

		BurnoutRiskScore:       d.float("burnout_risk_score"),
		AvgPatientSatisfaction: d.float("avg_patient_satisfaction"),
	}
	if d.err != nil {
		return models.HospitalMetric{}, d.err
	}
	if m.HospitalID == "" {
		return models.HospitalMetric{}, fmt.Errorf("row %d: hospital_id is empty", d.line)
	}

	if point, err := geo.ParseCoordinates(m.Location); err == nil {
		m.Coordinates = &point
	} else if m.PlaceLabel == "" {
		// legacy dataset: location holds a place name
		m.PlaceLabel = m.Location
	}
	return m, nil
}
