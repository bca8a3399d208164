// Package http serves the liveness, readiness and build info endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"callerverify/internal/core/version"
	"callerverify/internal/modkit/httpkit"

	"golang.org/x/sync/errgroup"
)

// Readiness statuses
const (
	StatusOK      = "ok"
	StatusFail    = "fail"
	StatusSkipped = "skipped"
)

// Pinger is a dependency that can report whether it answers
type Pinger interface {
	Ping(context.Context) error
}

// PingFunc adapts a plain function to Pinger
type PingFunc func(context.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Probe is a named readiness dependency, a nil Check is reported as skipped
type Probe struct {
	Name  string
	Check Pinger
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Probes      []Probe
	// Timeout bounds the whole readiness run, default 2s
	Timeout time.Duration
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"callerverify-api"`
	Started string `json:"started" example:"2026-01-10T09:00:00Z"`
	Now     string `json:"now"     example:"2026-01-10T09:05:00Z"`
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name   string `json:"name"            example:"redis"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:6379: connect: connection refused"`
}

// ReadyResponse is fail when any probe failed, skipped probes leave it ok
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-10T09:05:00Z"`
}

// ServiceResponse reports uptime in whole seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"callerverify-api"`
	Started string `json:"started" example:"2026-01-10T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// Register mounts health, ready, version and service on r
func Register(r httpkit.Router, d Deps) {
	if d.Timeout <= 0 {
		d.Timeout = 2 * time.Second
	}
	started := d.StartedAt.UTC().Format(time.RFC3339)

	// @Summary Liveness
	// @Tags Meta
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Router /meta/health [get]
	httpkit.Get(r, "/health", func(*http.Request) (any, error) {
		return HealthResponse{OK: true, Service: d.ServiceName, Started: started, Now: now()}, nil
	})

	// @Summary Readiness with one check per backing store
	// @Tags Meta
	// @Produce json
	// @Success 200 {object} ReadyResponse
	// @Router /meta/ready [get]
	httpkit.Get(r, "/ready", func(req *http.Request) (any, error) {
		ctx, cancel := context.WithTimeout(req.Context(), d.Timeout)
		defer cancel()
		return runProbes(ctx, d.Probes), nil
	})

	// @Summary Build info
	// @Tags Meta
	// @Produce json
	// @Success 200 {object} version.BuildInfo
	// @Router /meta/version [get]
	httpkit.Get(r, "/version", func(*http.Request) (any, error) {
		return version.Info(), nil
	})

	// @Summary Service name and uptime
	// @Tags Meta
	// @Produce json
	// @Success 200 {object} ServiceResponse
	// @Router /meta/service [get]
	httpkit.Get(r, "/service", func(*http.Request) (any, error) {
		return ServiceResponse{
			Name:    d.ServiceName,
			Started: started,
			Uptime:  int64(time.Since(d.StartedAt) / time.Second),
		}, nil
	})
}

// runProbes pings every probe concurrently, checks keep the probe order
func runProbes(ctx context.Context, probes []Probe) ReadyResponse {
	checks := make([]ReadyCheck, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		checks[i] = ReadyCheck{Name: p.Name, Status: StatusSkipped}
		if p.Check == nil {
			continue
		}
		g.Go(func() error {
			if err := p.Check.Ping(ctx); err != nil {
				checks[i] = ReadyCheck{Name: p.Name, Status: StatusFail, Error: err.Error()}
				return nil
			}
			checks[i].Status = StatusOK
			return nil
		})
	}
	_ = g.Wait()

	out := ReadyResponse{Status: StatusOK, Checks: checks, Now: now()}
	for _, c := range checks {
		if c.Status == StatusFail {
			out.Status = StatusFail
		}
	}
	return out
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }
