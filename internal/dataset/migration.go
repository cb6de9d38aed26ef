package dataset

import (
	"fmt"

	"hospital-reception-backend/pkg/geo"
)

// Columns the location migration reads or derives.
const (
	ColumnHospitalID = "hospital_id"
	ColumnLocation   = "location"
	ColumnPlaceLabel = "place_label"
)

// MigrationResult describes what a location migration changed.
type MigrationResult struct {
	Source       string   `json:"source"`
	AddedColumns []string `json:"added_columns"`
	Rows         int      `json:"rows"`
}

// Changed reports whether the source was rewritten.
func (r MigrationResult) Changed() bool {
	return len(r.AddedColumns) > 0
}

// MigrateLocations makes sure the metrics dataset carries both a coordinate "location"
// column and a "place_label" column, deriving missing values from mapping by hospital_id.
// A legacy "location" column holding place names is split: the text moves to
// place_label and location is refilled with mapped coordinates.
// The source is only rewritten when a column was added, so repeated runs are no-ops.
// A source without a hospital_id column, including an empty one, is left untouched.
func MigrateLocations(src Source, mapping LocationMapping) (*Table, MigrationResult, error) {
	table, err := src.Read()
	if err != nil {
		return nil, MigrationResult{Source: src.Name()}, err
	}

	result := MigrationResult{Source: src.Name(), Rows: table.Count()}
	if !table.HasColumn(ColumnHospitalID) {
		// nothing to map locations onto
		return table, result, nil
	}
	result.AddedColumns = migrateTable(table, mapping)
	if !result.Changed() {
		return table, result, nil
	}

	if err := src.Write(table); err != nil {
		return nil, result, fmt.Errorf("failed to persist location migration: %w", err)
	}
	return table, result, nil
}

func migrateTable(table *Table, mapping LocationMapping) []string {
	var added []string

	lookup := func(row Row) (LocationEntry, bool) {
		entry, ok := mapping[row.Get(ColumnHospitalID)]
		return entry, ok
	}

	if !table.HasColumn(ColumnLocation) {
		table.AddColumn(ColumnLocation, func(row Row) string {
			if entry, ok := lookup(row); ok {
				return entry.Coordinates()
			}
			return ""
		})
		added = append(added, ColumnLocation)
	}

	if !table.HasColumn(ColumnPlaceLabel) {
		table.AddColumn(ColumnPlaceLabel, func(row Row) string {
			raw := row.Get(ColumnLocation)
			entry, known := lookup(row)
			if raw != "" {
				if _, err := geo.ParseCoordinates(raw); err != nil {
					// legacy place-name location
					if known {
						row[ColumnLocation] = entry.Coordinates()
					} else {
						row[ColumnLocation] = ""
					}
					return raw
				}
			}
			if known {
				return entry.PlaceLabel
			}
			return ""
		})
		added = append(added, ColumnPlaceLabel)
	}

	return added
}
