package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal = `
[report]
generated_at = "2026-01-15T09:00:00Z"

[stores]
online = ["XE9"]

[[jobs]]
name = "hk"
countries = ["HK"]
period = "2512"
output = "out/{job}.json"

[[jobs.inputs]]
path = "hk.csv"

[[jobs.inputs]]
path = "hk.xlsx"
sheet = "PL"

[refresh]
interval = "15m"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, int64(1000), c.Report.Unit.Divisor)
	assert.Equal(t, "1K", c.Report.Unit.Label)
	assert.Equal(t, entity.FormulaGrossMinusSelling, c.Pipeline().DirectProfitFormula)
	assert.Equal(t, []string{"M99", "H99"}, c.Stores.HeadOffice)
	assert.Equal(t, []string{"XE9"}, c.Stores.Online)
	assert.Equal(t, 1, c.Batch.Concurrency)
	assert.Equal(t, 15*time.Minute, c.Refresh.WorkerInterval)
	assert.NotEmpty(t, c.Accounts)

	require.Len(t, c.Jobs, 1)
	assert.Equal(t, []string{"hk"}, c.JobNames())
	require.Len(t, c.Jobs[0].Inputs, 2)
	assert.Equal(t, "PL", c.Jobs[0].Inputs[1].Sheet)

	at, err := c.GeneratedAt()
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.Equal(t, time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC), at.UTC())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(db:3306)/pnl?parseTime=true")
	t.Setenv("BATCH_CONCURRENCY", "4")

	c, err := LoadConfig(writeConfig(t, minimal))
	require.NoError(t, err)
	assert.Equal(t, "user:pass@tcp(db:3306)/pnl?parseTime=true", c.DB.DSN)
	assert.Equal(t, 4, c.Batch.Concurrency)
}

func TestLoadConfig_DSNFromParts(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "pnl")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "reports")

	c, err := LoadConfig(writeConfig(t, minimal))
	require.NoError(t, err)
	assert.Equal(t, "pnl:secret@tcp(db:3306)/reports?charset=utf8mb4&parseTime=true", c.DB.DSN)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_Shipped(t *testing.T) {
	c, err := LoadConfig("config.toml")
	require.NoError(t, err)
	assert.Len(t, c.Jobs, 2)
	assert.Equal(t, []string{"hk", "mc"}, c.JobNames())
	assert.Equal(t, "ytd", c.Jobs[1].Mode)
	assert.Equal(t, "renovation", c.Stores.TemporaryExclusions[0].Reason)

	at, err := c.GeneratedAt()
	require.NoError(t, err)
	assert.Nil(t, at)
}
