// Package accounts maps ledger account names and codes onto canonical metrics.
// Every aggregation call site shares one Dictionary so the meaning of a metric
// such as labor cost cannot drift between reports.
package accounts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"golang.org/x/text/cases"
)

// Matcher lists the account names and codes accepted for one metric.
type Matcher struct {
	Names []string `mapstructure:"names"`
	Codes []string `mapstructure:"codes"`
}

// Config is the [accounts.<metric>] section of the configuration.
type Config map[string]Matcher

// Dictionary resolves accounts to metrics. It is immutable once built.
type Dictionary struct {
	byName map[string][]entity.Metric
	byCode map[string][]entity.Metric
	source map[entity.Metric]Matcher
}

// Normalize canonicalizes an account name for matching: trimmed, internal
// whitespace collapsed and case folded. A Caser keeps state, so one is made per call.
func Normalize(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// New builds a dictionary from config. Metric keys must be canonical metric names.
func New(c Config) (*Dictionary, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("account dictionary is empty")
	}
	d := &Dictionary{
		byName: make(map[string][]entity.Metric),
		byCode: make(map[string][]entity.Metric),
		source: make(map[entity.Metric]Matcher, len(c)),
	}
	// stable metric order so multi-metric accounts resolve deterministically
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		m := entity.Metric(strings.ToLower(strings.TrimSpace(k)))
		if !m.Valid() {
			return nil, fmt.Errorf("unknown metric %q in account dictionary", k)
		}
		matcher := c[k]
		if len(matcher.Names) == 0 && len(matcher.Codes) == 0 {
			return nil, fmt.Errorf("metric %q has no account names or codes", m)
		}
		for _, n := range matcher.Names {
			key := Normalize(n)
			if key == "" {
				continue
			}
			d.byName[key] = appendUnique(d.byName[key], m)
		}
		for _, code := range matcher.Codes {
			key := strings.TrimSpace(code)
			if key == "" {
				continue
			}
			d.byCode[key] = appendUnique(d.byCode[key], m)
		}
		d.source[m] = matcher
	}
	if _, ok := d.source[entity.MetricNetSales]; !ok {
		return nil, fmt.Errorf("account dictionary must map %s", entity.MetricNetSales)
	}
	return d, nil
}

// MustNew is New for package-level defaults and tests.
func MustNew(c Config) *Dictionary {
	d, err := New(c)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the metrics fed by an account. The name is tried first and the
// code is the fallback key. An empty result means the account is unmapped.
func (d *Dictionary) Lookup(name, code string) []entity.Metric {
	if ms, ok := d.byName[Normalize(name)]; ok {
		return ms
	}
	if code = strings.TrimSpace(code); code != "" {
		if ms, ok := d.byCode[code]; ok {
			return ms
		}
	}
	return nil
}

// Has reports whether metric m has at least one account mapped.
func (d *Dictionary) Has(m entity.Metric) bool {
	_, ok := d.source[m]
	return ok
}

// Metrics returns the mapped metrics in canonical order.
func (d *Dictionary) Metrics() []entity.Metric {
	out := make([]entity.Metric, 0, len(d.source))
	for _, m := range entity.Metrics {
		if d.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func appendUnique(ms []entity.Metric, m entity.Metric) []entity.Metric {
	for _, x := range ms {
		if x == m {
			return ms
		}
	}
	return append(ms, m)
}
