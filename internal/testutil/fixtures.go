// Package testutil locates the shared CSV fixtures under testdata/.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture file names under testdata/.
const (
	HospitalTrends = "hospital_trends.csv"
	Departments    = "departments.csv"
	Doctors        = "doctors.csv"
	Patients       = "patients.csv"
)

// FixturePath returns the absolute path of a fixture; callers must not write to it.
func FixturePath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// CopyFixture copies a fixture into a fresh temp dir, for tests that migrate or rewrite it.
func CopyFixture(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(FixturePath(name))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
