package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
)

// Fixtures is the full mock dataset, used to seed other providers.
type Fixtures struct {
	Series             []domain.Series
	PolicyDistribution domain.Breakdown
	ClaimsAnalysis     domain.Breakdown
	Clients            []domain.Client
	Policies           []domain.Policy
	Claims             []domain.Claim
	Payments           []domain.Payment
	Stats              domain.DashboardStats
}

// LoadFixtures returns a deep copy of the mock dataset.
func LoadFixtures() Fixtures {
	var series []domain.Series
	for _, rt := range domain.ReportTypes {
		for _, dr := range domain.DateRanges {
			series = append(series, domain.Series{Type: rt, Range: dr, Points: slices.Clone(seriesTable[seriesKey{rt, dr}])})
		}
	}
	return Fixtures{
		Series:             series,
		PolicyDistribution: policyDistribution.Clone(),
		ClaimsAnalysis:     claimsAnalysis.Clone(),
		Clients:            slices.Clone(clients),
		Policies:           slices.Clone(policies),
		Claims:             slices.Clone(claims),
		Payments:           slices.Clone(payments),
		Stats:              stats,
	}
}

type store struct{}

// NewStore returns the provider backed by the fixed in-process tables.
func NewStore() provider.Provider {
	return &store{}
}

func (s *store) Series(_ context.Context, rt domain.ReportType, dr domain.DateRange) (domain.Series, error) {
	points, ok := seriesTable[seriesKey{rt, dr}]
	if !ok {
		return domain.Series{}, fmt.Errorf("series %s/%s: %w", rt, dr, provider.ErrNotFound)
	}
	return domain.Series{Type: rt, Range: dr, Points: slices.Clone(points)}, nil
}

func (s *store) PolicyDistribution(_ context.Context) (domain.Breakdown, error) {
	return policyDistribution.Clone(), nil
}

func (s *store) ClaimsAnalysis(_ context.Context) (domain.Breakdown, error) {
	return claimsAnalysis.Clone(), nil
}

func (s *store) GetClient(_ context.Context, id int) (domain.Client, error) {
	return find(clients, id, func(c domain.Client) int { return c.ID }, "client")
}

func (s *store) ListClients(_ context.Context, filter domain.Filter) ([]domain.Client, error) {
	return filterBy(clients, func(c domain.Client) bool { return provider.MatchClient(c, filter) }), nil
}

func (s *store) GetPolicy(_ context.Context, id int) (domain.Policy, error) {
	return find(policies, id, func(p domain.Policy) int { return p.ID }, "policy")
}

func (s *store) ListPolicies(_ context.Context, filter domain.Filter) ([]domain.Policy, error) {
	return filterBy(policies, func(p domain.Policy) bool { return provider.MatchPolicy(p, filter) }), nil
}

func (s *store) GetClaim(_ context.Context, id int) (domain.Claim, error) {
	return find(claims, id, func(c domain.Claim) int { return c.ID }, "claim")
}

func (s *store) ListClaims(_ context.Context, filter domain.Filter) ([]domain.Claim, error) {
	return filterBy(claims, func(c domain.Claim) bool { return provider.MatchClaim(c, filter) }), nil
}

func (s *store) GetPayment(_ context.Context, id int) (domain.Payment, error) {
	return find(payments, id, func(p domain.Payment) int { return p.ID }, "payment")
}

func (s *store) ListPayments(_ context.Context, filter domain.Filter) ([]domain.Payment, error) {
	return filterBy(payments, func(p domain.Payment) bool { return provider.MatchPayment(p, filter) }), nil
}

func (s *store) Stats(_ context.Context) (domain.DashboardStats, error) {
	return stats, nil
}

func find[T any](items []T, id int, key func(T) int, kind string) (T, error) {
	for _, it := range items {
		if key(it) == id {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", kind, id, provider.ErrNotFound)
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
