package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hospital-reception-backend/internal/testutil"
	"hospital-reception-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	legacy := "hospital_id,hospital_name,date,location\n" +
		"H001,City General,2024-10-20,\"New York, NY\"\n" +
		"H002,Metro Health,2024-10-20,\"Los Angeles, CA\"\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	out, err := run(t, "migrate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "added place_label to 2 rows")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "40.7128,-74.006")
	assert.Contains(t, string(content), "New York, NY")

	out, err = run(t, "migrate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "already migrated")
}

func TestMigrateCommandRequiresFile(t *testing.T) {
	_, err := run(t, "migrate")
	assert.Error(t, err)
}

func TestDistancesCommand(t *testing.T) {
	out, err := run(t, "distances", "--file", testutil.FixturePath(testutil.HospitalTrends))
	require.NoError(t, err)
	assert.Contains(t, out, "FROM")
	assert.Contains(t, out, "City General")
	assert.Contains(t, out, "3 pairs")

	out, err = run(t, "distances", "--json", "--file", testutil.FixturePath(testutil.HospitalTrends))
	require.NoError(t, err)
	assert.Contains(t, out, `"total_pairs": 3`)

	_, err = run(t, "distances", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--secret", "cli-secret", "--subject", "reception-agent", "--ttl", "1h")
	require.NoError(t, err)

	utils.InitJWT("cli-secret", time.Hour)
	claims, err := utils.ValidateServiceToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "reception-agent", claims.Subject)
	assert.Equal(t, "agent", claims.Role)

	t.Setenv("SERVICE_TOKEN_SECRET", "")
	_, err = run(t, "token")
	assert.Error(t, err)
}

func TestAPIKeyCommand(t *testing.T) {
	out, err := run(t, "apikey")
	require.NoError(t, err)

	var key, hash string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		field, value, _ := strings.Cut(line, ":")
		switch field {
		case "key":
			key = strings.TrimSpace(value)
		case "hash":
			hash = strings.TrimSpace(value)
		}
	}
	require.NotEmpty(t, key)
	assert.True(t, utils.MatchAPIKey([]string{hash}, key))
}

func TestQueriesCommandRejectsLimit(t *testing.T) {
	_, err := run(t, "queries", "--limit", "0")
	assert.Error(t, err)
}
