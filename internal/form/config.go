package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/jekabolt/grbpwr-pnl/config"
	"github.com/jekabolt/grbpwr-pnl/internal/accounts"
	httpapi "github.com/jekabolt/grbpwr-pnl/internal/api/http"
	"github.com/jekabolt/grbpwr-pnl/internal/bucket"
	"github.com/jekabolt/grbpwr-pnl/internal/dto"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/jekabolt/grbpwr-pnl/internal/ledger"
	"github.com/jekabolt/grbpwr-pnl/internal/pipeline"
	"github.com/jekabolt/grbpwr-pnl/internal/refresh"
	"github.com/jekabolt/grbpwr-pnl/internal/revalidation"
	"github.com/jekabolt/grbpwr-pnl/internal/store"
)

var jobNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Settings is the loaded configuration file.
type Settings struct {
	*config.Config
}

// Validate checks everything a generate run depends on.
func (s *Settings) Validate() error {
	c := s.Config
	if c == nil {
		return &Error{Violations: []string{"Configuration is missing."}}
	}
	return ValidateStruct(c,
		v.Field(&c.Report, v.By(validateReport)),
		v.Field(&c.Accounts, v.By(validateAccounts(c.Report.DirectProfitFormula))),
		v.Field(&c.Stores, v.By(validateStores)),
		v.Field(&c.Ledger, v.By(validateLedger)),
		v.Field(&c.Jobs, v.Required.Error("at least one job is required"), v.By(validateJobs)),
		v.Field(&c.Batch, v.By(validateBatch)),
		v.Field(&c.Bucket, v.By(validateBucket)),
		v.Field(&c.Revalidation, v.By(validateRevalidation)),
	)
}

// ValidateServe adds what the serve command needs on top of Validate.
func (s *Settings) ValidateServe() error {
	if err := s.Validate(); err != nil {
		return err
	}
	c := s.Config
	return ValidateStruct(c,
		v.Field(&c.DB, v.By(validateDB)),
		v.Field(&c.HTTP, v.By(validateHTTP)),
		v.Field(&c.Refresh, v.By(validateRefresh)),
	)
}

func validateReport(value interface{}) error {
	r, ok := value.(config.ReportConfig)
	if !ok {
		return fmt.Errorf("invalid type for report")
	}
	return ValidateStruct(&r,
		v.Field(&r.DirectProfitFormula, v.Required, v.In(
			string(entity.FormulaGrossMinusSelling),
			string(entity.FormulaGrossMinusDirectCosts),
		)),
		v.Field(&r.Unit, v.By(validateUnit)),
		v.Field(&r.CategoryNames, v.By(validateCategoryNames)),
		v.Field(&r.GeneratedAt, v.By(rfc3339)),
	)
}

func validateUnit(value interface{}) error {
	u, ok := value.(dto.Unit)
	if !ok {
		return fmt.Errorf("invalid type for unit")
	}
	return ValidateStruct(&u,
		v.Field(&u.Divisor, v.Required, v.Min(1)),
		v.Field(&u.MoneyPrecision, v.Min(0), v.Max(6)),
		v.Field(&u.PctPrecision, v.Min(0), v.Max(6)),
	)
}

func validateCategoryNames(value interface{}) error {
	names, _ := value.(map[string]string)
	errs := v.Errors{}
	for k, name := range names {
		if !entity.Category(k).Valid() {
			errs[k] = fmt.Errorf("unknown category")
			continue
		}
		if strings.TrimSpace(name) == "" {
			errs[k] = fmt.Errorf("display name cannot be blank")
		}
	}
	return errs.Filter()
}

func validateAccounts(formula string) v.RuleFunc {
	return func(value interface{}) error {
		c, _ := value.(accounts.Config)
		d, err := accounts.New(c)
		if err != nil {
			return err
		}
		if entity.DirectProfitFormula(formula) == entity.FormulaGrossMinusDirectCosts && !d.Has(entity.MetricDirectCost) {
			return fmt.Errorf("%s needs accounts mapped to %s", formula, entity.MetricDirectCost)
		}
		return nil
	}
}

func validateStores(value interface{}) error {
	s, ok := value.(pipeline.StoresConfig)
	if !ok {
		return fmt.Errorf("invalid type for stores")
	}
	return ValidateStruct(&s,
		v.Field(&s.HeadOffice, v.Each(v.Required)),
		v.Field(&s.Online, v.Each(v.Required)),
		v.Field(&s.ExcludeSuffixes, v.Each(v.Required)),
		v.Field(&s.TemporaryExclusions, v.Each(v.By(validateExclusion))),
	)
}

func validateExclusion(value interface{}) error {
	e, ok := value.(pipeline.TemporaryExclusion)
	if !ok {
		return fmt.Errorf("invalid type for temporary exclusion")
	}
	return ValidateStruct(&e,
		v.Field(&e.Code, v.Required),
		v.Field(&e.Reason, v.Required),
		v.Field(&e.Periods, v.Each(v.Required, v.By(period))),
	)
}

func validateLedger(value interface{}) error {
	l, ok := value.(ledger.Config)
	if !ok {
		return fmt.Errorf("invalid type for ledger")
	}
	return ValidateStruct(&l,
		v.Field(&l.Delimiter, v.RuneLength(0, 1)),
	)
}

func validateJobs(value interface{}) error {
	jobs, _ := value.([]pipeline.JobConfig)
	errs := v.Errors{}
	seen := make(map[string]struct{}, len(jobs))
	for i, jc := range jobs {
		key := jc.Name
		_, dup := seen[jc.Name]
		if key == "" || dup {
			key = strconv.Itoa(i)
		}
		if dup && jc.Name != "" {
			errs[key] = fmt.Errorf("duplicate job name %q", jc.Name)
			continue
		}
		seen[jc.Name] = struct{}{}
		if err := ValidateJob(jc); err != nil {
			errs[key] = err
		}
	}
	return errs.Filter()
}

// ValidateJob checks one [[jobs]] entry.
func ValidateJob(jc pipeline.JobConfig) error {
	return ValidateStruct(&jc,
		v.Field(&jc.Name, v.Required, v.Length(1, 64), v.Match(jobNameRe)),
		v.Field(&jc.Inputs, v.Required, v.Each(v.By(validateSource))),
		v.Field(&jc.Countries, v.Each(v.Required)),
		v.Field(&jc.Brands, v.Each(v.Required)),
		v.Field(&jc.Period, v.Required, v.By(period)),
		v.Field(&jc.ComparePeriod, v.By(period), v.By(earlierThan(jc.Period))),
		v.Field(&jc.Mode, v.By(mode)),
		v.Field(&jc.Output, v.Required),
	)
}

func validateSource(value interface{}) error {
	s, ok := value.(ledger.Source)
	if !ok {
		return fmt.Errorf("invalid type for input")
	}
	return ValidateStruct(&s,
		v.Field(&s.Path, v.Required),
		v.Field(&s.Format, v.By(func(value interface{}) error {
			f, _ := value.(string)
			return v.Validate(strings.ToLower(f), v.In(ledger.FormatCSV, ledger.FormatXLSX))
		})),
	)
}

func validateBatch(value interface{}) error {
	b, ok := value.(config.BatchConfig)
	if !ok {
		return fmt.Errorf("invalid type for batch")
	}
	return ValidateStruct(&b,
		v.Field(&b.Concurrency, v.Min(0), v.Max(64)),
	)
}

func validateBucket(value interface{}) error {
	b, ok := value.(bucket.Config)
	if !ok {
		return fmt.Errorf("invalid type for bucket")
	}
	if !b.Enabled() {
		return nil
	}
	return ValidateStruct(&b,
		v.Field(&b.S3AccessKey, v.Required),
		v.Field(&b.S3SecretAccessKey, v.Required),
		v.Field(&b.S3BucketName, v.Required),
		v.Field(&b.PublicURL, is.URL),
	)
}

func validateRevalidation(value interface{}) error {
	r, ok := value.(revalidation.Config)
	if !ok {
		return fmt.Errorf("invalid type for revalidation")
	}
	return ValidateStruct(&r,
		v.Field(&r.Endpoints, v.Each(v.Required, is.URL)),
		v.Field(&r.RevalidateSecret, v.When(len(r.Endpoints) > 0, v.Required)),
		v.Field(&r.Retries, v.Min(0), v.Max(10)),
	)
}

func validateDB(value interface{}) error {
	db, ok := value.(store.Config)
	if !ok {
		return fmt.Errorf("invalid type for mysql")
	}
	return ValidateStruct(&db,
		v.Field(&db.DSN, v.Required.Error("is required to serve archived reports")),
		v.Field(&db.MaxOpenConnections, v.Min(0)),
		v.Field(&db.MaxIdleConnections, v.Min(0)),
	)
}

func validateHTTP(value interface{}) error {
	h, ok := value.(httpapi.Config)
	if !ok {
		return fmt.Errorf("invalid type for http")
	}
	return ValidateStruct(&h,
		v.Field(&h.Port, v.Required, is.Port),
		v.Field(&h.AllowedOrigins, v.Each(v.Required)),
	)
}

func validateRefresh(value interface{}) error {
	r, ok := value.(refresh.Config)
	if !ok {
		return fmt.Errorf("invalid type for refresh")
	}
	if !r.Enabled {
		return nil
	}
	return ValidateStruct(&r,
		v.Field(&r.WorkerInterval, v.Required, v.Min(time.Second)),
	)
}

func period(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := entity.ParsePeriod(s)
	return err
}

// earlierThan requires a period strictly before anchor. Unparsable values are
// left to the period rule.
func earlierThan(anchor string) v.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return nil
		}
		cp, err := entity.ParsePeriod(s)
		if err != nil {
			return nil
		}
		p, err := entity.ParsePeriod(anchor)
		if err != nil {
			return nil
		}
		if !cp.Before(p) {
			return fmt.Errorf("must be before %s", p)
		}
		return nil
	}
}

func mode(value interface{}) error {
	s, _ := value.(string)
	m := entity.ReportMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" || m.Valid() {
		return nil
	}
	return fmt.Errorf("must be %s or %s", entity.ModeMonth, entity.ModeYTD)
}

func rfc3339(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be an RFC3339 timestamp")
	}
	return nil
}
