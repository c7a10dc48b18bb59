package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/jekabolt/grbpwr-pnl/config"
	"github.com/jekabolt/grbpwr-pnl/internal/accounts"
	"github.com/jekabolt/grbpwr-pnl/internal/dto"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
	"github.com/jekabolt/grbpwr-pnl/internal/ledger"
	"github.com/jekabolt/grbpwr-pnl/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		Report: config.ReportConfig{
			Unit:                dto.DefaultUnit(),
			DirectProfitFormula: "gross_minus_selling",
		},
		Stores:   pipeline.DefaultStoresConfig(),
		Accounts: accounts.DefaultConfig(),
		Jobs: []pipeline.JobConfig{{
			Name:      "hk",
			Inputs:    []ledger.Source{{Path: "hk.csv"}},
			Countries: []string{"HK"},
			Period:    "202512",
			Output:    "out/{job}.json",
		}},
		Batch: config.BatchConfig{Concurrency: 1},
	}
}

func violations(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, gerr.ErrInvalidConfig))
	var fe *Error
	require.True(t, errors.As(err, &fe))
	return fe.Violations
}

func TestSettings_Valid(t *testing.T) {
	s := &Settings{validConfig()}
	assert.NoError(t, s.Validate())
}

func TestSettings_ReportsEveryViolation(t *testing.T) {
	c := validConfig()
	c.Report.DirectProfitFormula = "revenue"
	c.Report.GeneratedAt = "yesterday"
	c.Report.CategoryNames = map[string]string{"stars": "Stars"}
	c.Jobs[0].Period = "202513"
	c.Jobs[0].Mode = "weekly"
	c.Jobs = append(c.Jobs, c.Jobs[0])

	vs := violations(t, (&Settings{c}).Validate())
	assert.Contains(t, vs, "Report.DirectProfitFormula: Must be a valid value.")
	assert.Contains(t, vs, "Report.GeneratedAt: Must be an RFC3339 timestamp.")
	assert.Contains(t, vs, "Report.CategoryNames.stars: Unknown category.")
	assert.Contains(t, vs, `Jobs.1: Duplicate job name "hk".`)
	var periodErr, modeErr bool
	for _, v := range vs {
		if strings.HasPrefix(v, "Jobs.hk.Period: ") {
			periodErr = true
		}
		if v == "Jobs.hk.Mode: Must be month or ytd." {
			modeErr = true
		}
	}
	assert.True(t, periodErr, vs)
	assert.True(t, modeErr, vs)
}

func TestSettings_NoJobs(t *testing.T) {
	c := validConfig()
	c.Jobs = nil
	vs := violations(t, (&Settings{c}).Validate())
	assert.Equal(t, []string{"Jobs: At least one job is required."}, vs)
}

func TestSettings_DirectCostFormulaNeedsAccounts(t *testing.T) {
	c := validConfig()
	c.Report.DirectProfitFormula = "gross_minus_direct_costs"
	vs := violations(t, (&Settings{c}).Validate())
	require.Len(t, vs, 1)
	assert.Contains(t, vs[0], "direct_cost")

	c.Accounts["direct_cost"] = accounts.Matcher{Names: []string{"direct cost"}}
	assert.NoError(t, (&Settings{c}).Validate())
}

func TestValidateJob(t *testing.T) {
	jc := pipeline.JobConfig{
		Name:   "Hong Kong",
		Inputs: []ledger.Source{{Path: ""}, {Path: "a.ods", Format: "ods"}},
	}
	vs := violations(t, ValidateJob(jc))
	assert.Contains(t, vs, "Inputs.0.Path: Cannot be blank.")
	assert.Contains(t, vs, "Inputs.1.Format: Must be a valid value.")
	assert.Contains(t, vs, "Period: Cannot be blank.")
	assert.Contains(t, vs, "Output: Cannot be blank.")
	assert.Contains(t, vs, "Name: Must be in a valid format.")
}

func TestValidateJob_ComparePeriodMustBeEarlier(t *testing.T) {
	jc := validConfig().Jobs[0]
	jc.ComparePeriod = "2512"
	vs := violations(t, ValidateJob(jc))
	assert.Equal(t, []string{"ComparePeriod: Must be before 202512."}, vs)

	jc.ComparePeriod = "202412"
	assert.NoError(t, ValidateJob(jc))
}

func TestValidateServe(t *testing.T) {
	c := validConfig()
	c.HTTP.Port = "80a"
	c.Refresh.Enabled = true

	vs := violations(t, (&Settings{c}).ValidateServe())
	assert.Contains(t, vs, "DB.DSN: Is required to serve archived reports.")
	assert.Contains(t, vs, "HTTP.Port: Must be a valid port number.")
	assert.Contains(t, vs, "Refresh.WorkerInterval: Cannot be blank.")
}

func TestGenerateRequest(t *testing.T) {
	known := []string{"hk", "mc"}

	assert.NoError(t, (&GenerateRequest{Job: "hk", Period: "2601", Known: known}).Validate())
	assert.NoError(t, (&GenerateRequest{All: true, Output: "out/{job}.json", Known: known}).Validate())
	assert.NoError(t, (&GenerateRequest{Known: []string{"hk"}}).Validate())

	vs := violations(t, (&GenerateRequest{Known: known}).Validate())
	assert.Equal(t, []string{"Job: Is required when more than one job is configured."}, vs)

	vs = violations(t, (&GenerateRequest{All: true, Job: "hk", Inputs: []string{"a.csv"}, Output: "x.json", Known: known}).Validate())
	assert.Contains(t, vs, "Job: Cannot be combined with --all.")
	assert.Contains(t, vs, "Inputs: Cannot be combined with --all.")
	assert.Contains(t, vs, "Output: Must contain {job} when running all jobs.")

	vs = violations(t, (&GenerateRequest{Job: "jp", Known: known}).Validate())
	assert.Equal(t, []string{"Job: Is not a configured job."}, vs)
}

func TestGenerateRequest_Select(t *testing.T) {
	jobs := []pipeline.JobConfig{
		{Name: "hk", Period: "202512", ComparePeriod: "202312", Inputs: []ledger.Source{{Path: "hk.csv"}}},
		{Name: "mc", Period: "202512"},
	}
	r := &GenerateRequest{Job: "hk", Period: "202601", Mode: "ytd", Inputs: []string{"a.csv", "b.xlsx"}, Output: "x.json"}
	got := r.Select(jobs)
	require.Len(t, got, 1)
	assert.Equal(t, "202601", got[0].Period)
	assert.Empty(t, got[0].ComparePeriod)
	assert.Equal(t, "ytd", got[0].Mode)
	assert.Equal(t, []ledger.Source{{Path: "a.csv"}, {Path: "b.xlsx"}}, got[0].Inputs)
	assert.Equal(t, "x.json", got[0].Output)
	assert.Equal(t, "hk.csv", jobs[0].Inputs[0].Path)

	got = (&GenerateRequest{All: true}).Select(jobs)
	assert.Len(t, got, 2)
}
