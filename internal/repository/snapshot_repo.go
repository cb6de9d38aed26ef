package repository

import (
	"context"
	"fmt"

	"hospital-reception-backend/internal/models"

	"gorm.io/gorm"
)

const snapshotBatchSize = 200

// Snapshot is the full content of the four datasets at load time.
type Snapshot struct {
	Metrics     []models.HospitalMetric
	Departments []models.Department
	Doctors     []models.Doctor
	Patients    []models.Patient
}

// SnapshotRepository mirrors loaded datasets into MySQL.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// AutoMigrate creates or updates the mirror tables
func (r *SnapshotRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&models.HospitalMetric{},
		&models.Department{},
		&models.Doctor{},
		&models.Patient{},
		&models.QueryLog{},
	)
}

// ReplaceAll swaps the contents of every mirror table in one transaction
func (r *SnapshotRepository) ReplaceAll(ctx context.Context, snap Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceTable(tx, &models.HospitalMetric{}, snap.Metrics); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Department{}, snap.Departments); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Doctor{}, snap.Doctors); err != nil {
			return err
		}
		return replaceTable(tx, &models.Patient{}, snap.Patients)
	})
}

func replaceTable[T any](tx *gorm.DB, model *T, rows []T) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return fmt.Errorf("failed to clear %T: %w", model, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, snapshotBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert %T: %w", model, err)
	}
	return nil
}
