package service

import (
	"errors"
	"testing"

	"hospital-reception-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalCountMatchesNames(t *testing.T) {
	s := fixtureServices(t)

	names := s.hospital.Names()
	require.Len(t, names, 3)
	assert.Equal(t, len(names), s.hospital.Count())

	ids := map[string]bool{}
	for _, n := range names {
		ids[n.HospitalID] = true
	}
	assert.Len(t, ids, s.hospital.Count())

	assert.Equal(t, "H001", names[0].HospitalID)
	assert.Equal(t, "City General", names[0].HospitalName)
	assert.Equal(t, "40.7128,-74.0060", names[0].Location)
	assert.Equal(t, "Lakeside Medical", names[2].HospitalName)
}

func TestHospitalDetailsByDate(t *testing.T) {
	s := fixtureServices(t)

	details, err := s.hospital.DetailsByDate("City General", "2024-10-20")
	require.NoError(t, err)
	assert.Equal(t, "H001", details.HospitalID)
	assert.Equal(t, "Northeast", details.Region)
	assert.Equal(t, 500, details.BedCapacity)
	assert.Equal(t, 460, details.BedsOccupied)
	assert.Equal(t, 40, details.BedsAvailable)
	assert.Equal(t, 120, details.EmergencyVisits)
	assert.InDelta(t, 4.2, details.AvgPatientSatisfaction, 1e-9)

	_, err = s.hospital.DetailsByDate("City General", "2024-11-01")
	assertKind(t, err, apperrors.KindNotFound)

	// hospital names match exactly
	_, err = s.hospital.DetailsByDate("city general", "2024-10-20")
	assertKind(t, err, apperrors.KindNotFound)

	_, err = s.hospital.DetailsByDate("City General", "20 Oct 2024")
	assertKind(t, err, apperrors.KindInvalidInput)

	_, err = s.hospital.DetailsByDate("", "2024-10-20")
	assertKind(t, err, apperrors.KindInvalidInput)
}

func TestDateRange(t *testing.T) {
	s := fixtureServices(t)

	r, err := s.hospital.DateRange()
	require.NoError(t, err)
	assert.Equal(t, "2024-10-20", r.StartDate)
	assert.Equal(t, "2024-10-22", r.EndDate)
	assert.Equal(t, 3, r.TotalDays)
	assert.Equal(t, []string{"2024-10-20", "2024-10-21", "2024-10-22"}, r.AllDates)
	assert.LessOrEqual(t, r.StartDate, r.EndDate)
}

func TestHospitalServiceOnEmptyStore(t *testing.T) {
	s := emptyServices(t)

	assert.Zero(t, s.hospital.Count())
	assert.Empty(t, s.hospital.Names())

	_, err := s.hospital.DateRange()
	assertKind(t, err, apperrors.KindEmptyStore)

	_, err = s.hospital.DetailsByDate("City General", "2024-10-20")
	assertKind(t, err, apperrors.KindEmptyStore)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
