package repository

import (
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/models"

	"go.uber.org/zap"
)

// DepartmentDataset names the department dataset in outcomes and logs.
const DepartmentDataset = "Department"

type DepartmentRepository struct {
	*RecordStore[models.Department]
}

// NewDepartmentRepo decodes a department table. A nil table gives an empty store.
func NewDepartmentRepo(table *dataset.Table) (*DepartmentRepository, error) {
	if table == nil {
		return &DepartmentRepository{newRecordStore[models.Department](DepartmentDataset, nil, true)}, nil
	}

	records := make([]models.Department, 0, table.Count())
	for i, row := range table.All() {
		d := newRowDecoder(row, i)
		records = append(records, models.Department{
			DepartmentID:     d.str("department_id"),
			DepartmentName:   d.str("department_name"),
			Floor:            d.str("floor"),
			Building:         d.str("building"),
			ContactExtension: d.str("contact_extension"),
		})
	}
	return &DepartmentRepository{newRecordStore(DepartmentDataset, records, false)}, nil
}

// LoadDepartments reads the department source.
func LoadDepartments(src dataset.Source, logger *zap.Logger) (*DepartmentRepository, error) {
	table, err := readSource(src, DepartmentDataset, logger)
	if err != nil {
		return nil, err
	}
	return NewDepartmentRepo(table)
}
