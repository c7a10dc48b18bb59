// Package revalidation tells dashboard deployments that a report was published
// so they drop their cached copy.
package revalidation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"golang.org/x/sync/errgroup"
)

const maxConcurrent = 5

type Config struct {
	Endpoints        []string      `mapstructure:"endpoints"`
	RevalidateSecret string        `mapstructure:"revalidate_secret"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	Retries          int           `mapstructure:"retries"`
}

// Enabled reports whether any endpoint is configured.
func (c *Config) Enabled() bool {
	return c != nil && len(c.Endpoints) > 0
}

// Payload is the body posted to every endpoint.
type Payload struct {
	Job    string `json:"job"`
	Period string `json:"period"`
	URL    string `json:"url"`
}

type Revalidator struct {
	c      *Config
	client *resty.Client
}

func New(c *Config) *Revalidator {
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	retries := c.Retries
	if retries == 0 {
		retries = 2
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	return &Revalidator{c: c, client: client}
}

// Revalidate posts the published report to every endpoint and returns the
// joined errors of those that failed.
func (v *Revalidator) Revalidate(ctx context.Context, job string, period entity.Period, url string) error {
	payload := Payload{Job: job, Period: period.String(), URL: url}
	errs := make([]error, len(v.c.Endpoints))

	var g errgroup.Group
	g.SetLimit(maxConcurrent)
	for i, endpoint := range v.c.Endpoints {
		i, endpoint := i, endpoint
		g.Go(func() error {
			errs[i] = v.revalidate(ctx, endpoint, payload)
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

func (v *Revalidator) revalidate(ctx context.Context, endpoint string, payload Payload) error {
	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParam("secret", v.c.RevalidateSecret).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("failed to POST to %s: %w", endpoint, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("revalidate failed for %s (status %d): %s", endpoint, resp.StatusCode(), resp.String())
	}
	slog.Default().InfoContext(ctx, "dashboard revalidated",
		slog.String("endpoint", endpoint),
		slog.String("job", payload.Job),
		slog.String("period", payload.Period),
	)
	return nil
}
