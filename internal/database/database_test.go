package database

import (
	"testing"

	"hospital-reception-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "3307",
		User:     "reception",
		Password: "s3cret",
		Database: "hospital_reception",
	}}

	assert.Equal(t,
		"reception:s3cret@tcp(db.internal:3307)/hospital_reception?charset=utf8mb4&parseTime=True&loc=Local",
		DSN(cfg),
	)
}
