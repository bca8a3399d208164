// Package service implements identity verification over the directory and the resolver
package service

import (
	"context"
	"strings"

	"callerverify/internal/platform/logger"
	str "callerverify/internal/platform/strings"
	"callerverify/internal/services/api/verify/domain"
	resdom "callerverify/internal/services/resolver/domain"

	"golang.org/x/sync/errgroup"
)

// Service defines the verifier contract
type Service interface{ domain.VerifierPort }

// Svc implements Service
type Svc struct {
	dir         domain.Directory
	resolver    resdom.ResolverPort
	concurrency int
	metrics     *Metrics
}

// New constructs a verifier; concurrency below 1 means sequential, m may be nil
func New(dir domain.Directory, resolver resdom.ResolverPort, concurrency int, m *Metrics) *Svc {
	if dir == nil {
		panic("verify.Service requires a non nil Directory")
	}
	if resolver == nil {
		panic("verify.Service requires a non nil Resolver")
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Svc{dir: dir, resolver: resolver, concurrency: concurrency, metrics: m}
}

// VerifyOne verifies the claimed name for a single number
// an absent, nameless or unreachable directory entry is an error, a provider failure is a LookupError verdict
func (s *Svc) VerifyOne(ctx context.Context, phone string) (domain.Result, error) {
	rec, ok, err := s.dir.GetRecord(ctx, phone)
	if err != nil {
		s.metrics.directoryFailure(err, false)
		return domain.Result{}, err
	}
	if !ok || !claimed(rec) {
		s.metrics.directoryFailure(nil, true)
		return domain.Result{}, domain.DirectoryMissing(phone)
	}
	return s.verify(ctx, rec), nil
}

// VerifyAll verifies every directory record in enumeration order
// a failure on one record never stops the others, records without a claimed name are skipped
func (s *Svc) VerifyAll(ctx context.Context) ([]domain.Result, error) {
	all, err := s.dir.ListRecords(ctx)
	if err != nil {
		s.metrics.directoryFailure(err, false)
		return nil, err
	}
	recs := make([]domain.Record, 0, len(all))
	for _, rec := range all {
		if !claimed(rec) {
			s.metrics.directoryFailure(nil, true)
			logger.C(ctx).Warn().Str("phone_number", rec.PhoneNumber).Msg("directory record has no claimed name")
			continue
		}
		recs = append(recs, rec)
	}

	out := make([]domain.Result, len(recs))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, rec := range recs {
		g.Go(func() error {
			out[i] = s.verify(ctx, rec)
			return nil
		})
	}
	_ = g.Wait()

	logger.C(ctx).Debug().Int("records", len(recs)).Int("concurrency", s.concurrency).Msg("verified directory")
	return out, nil
}

func (s *Svc) verify(ctx context.Context, rec domain.Record) domain.Result {
	res := domain.Result{PhoneNumber: rec.PhoneNumber, ClaimedName: rec.ClaimedName}

	r, err := s.resolver.Resolve(ctx, rec.PhoneNumber)
	if err != nil {
		res.Status = domain.StatusLookupError
		res.Error = err.Error()
		if !resdom.IsLookupFailure(err) {
			// the resolver only reports provider failures, anything else is a bug upstream
			logger.C(ctx).Error().Err(err).Str("phone_number", rec.PhoneNumber).Msg("unexpected resolver error")
		}
		s.metrics.verdict(res.Status)
		return res
	}

	res.ResolvedName = str.Ptr(r.Name)
	res.Status = Compare(rec.ClaimedName, r.Name)
	s.metrics.verdict(res.Status)
	return res
}

func claimed(rec domain.Record) bool { return strings.TrimSpace(rec.ClaimedName) != "" }

// Compare is the exact match policy: verified iff resolved is non-empty and byte equal to claimed
func Compare(claimed, resolved string) domain.Status {
	if resolved != "" && resolved == claimed {
		return domain.StatusVerified
	}
	return domain.StatusInvalid
}
