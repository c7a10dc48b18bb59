package form

import (
	"fmt"
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-pnl/internal/ledger"
	"github.com/jekabolt/grbpwr-pnl/internal/pipeline"
)

// GenerateRequest holds the command line overrides of the generate command.
type GenerateRequest struct {
	Job    string
	Period string
	Mode   string
	Inputs []string
	Output string
	All    bool
	// Known lists the configured job names.
	Known []string
}

func (r *GenerateRequest) Validate() error {
	known := make([]interface{}, 0, len(r.Known))
	for _, k := range r.Known {
		known = append(known, k)
	}
	return ValidateStruct(r,
		v.Field(&r.Job,
			v.When(r.All, v.Empty.Error("cannot be combined with --all")),
			v.When(!r.All && len(r.Known) > 1, v.Required.Error("is required when more than one job is configured")),
			v.In(known...).Error("is not a configured job"),
		),
		v.Field(&r.Period, v.By(period)),
		v.Field(&r.Mode, v.By(mode)),
		v.Field(&r.Inputs, v.When(r.All, v.Empty.Error("cannot be combined with --all")), v.Each(v.Required)),
		v.Field(&r.Output, v.When(r.All, v.By(func(value interface{}) error {
			s, _ := value.(string)
			if s != "" && !strings.Contains(s, "{job}") {
				return fmt.Errorf("must contain {job} when running all jobs")
			}
			return nil
		}))),
	)
}

// Select returns the jobs to run with the overrides applied.
func (r *GenerateRequest) Select(jobs []pipeline.JobConfig) []pipeline.JobConfig {
	var out []pipeline.JobConfig
	for _, jc := range jobs {
		if !r.All && r.Job != "" && jc.Name != r.Job {
			continue
		}
		if r.Period != "" {
			jc.Period = r.Period
			// an explicit period moves the default comparison with it
			jc.ComparePeriod = ""
		}
		if r.Mode != "" {
			jc.Mode = r.Mode
		}
		if len(r.Inputs) > 0 {
			jc.Inputs = make([]ledger.Source, 0, len(r.Inputs))
			for _, p := range r.Inputs {
				jc.Inputs = append(jc.Inputs, ledger.Source{Path: p})
			}
		}
		if r.Output != "" {
			jc.Output = r.Output
		}
		out = append(out, jc)
	}
	return out
}
