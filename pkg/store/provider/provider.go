package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
)

var ErrNotFound = errors.New("not found")

// ReportSource serves the report lookup tables. Every call returns data the caller owns.
type ReportSource interface {
	Series(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (domain.Series, error)
	PolicyDistribution(ctx context.Context) (domain.Breakdown, error)
	ClaimsAnalysis(ctx context.Context) (domain.Breakdown, error)
}

// Catalog fetches back-office entities. Unknown ids yield ErrNotFound.
type Catalog interface {
	GetClient(ctx context.Context, id int) (domain.Client, error)
	ListClients(ctx context.Context, filter domain.Filter) ([]domain.Client, error)
	GetPolicy(ctx context.Context, id int) (domain.Policy, error)
	ListPolicies(ctx context.Context, filter domain.Filter) ([]domain.Policy, error)
	GetClaim(ctx context.Context, id int) (domain.Claim, error)
	ListClaims(ctx context.Context, filter domain.Filter) ([]domain.Claim, error)
	GetPayment(ctx context.Context, id int) (domain.Payment, error)
	ListPayments(ctx context.Context, filter domain.Filter) ([]domain.Payment, error)
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type Provider interface {
	ReportSource
	Catalog
}

// MatchClient applies the listing filter the same way for every Catalog implementation.
func MatchClient(c domain.Client, f domain.Filter) bool {
	return matchAny(f.Search, c.ClientID, c.Name, c.Email) && matchExact(f.Type, c.Type)
}

func MatchPolicy(p domain.Policy, f domain.Filter) bool {
	return matchAny(f.Search, p.PolicyNumber, p.ClientName, p.Type) &&
		matchExact(f.Status, p.Status) &&
		matchExact(f.Type, p.Type)
}

func MatchClaim(c domain.Claim, f domain.Filter) bool {
	return matchAny(f.Search, c.ClaimNumber, c.PolicyNumber, c.ClientName) &&
		matchExact(f.Status, c.Status) &&
		matchExact(f.Type, c.Type)
}

func MatchPayment(p domain.Payment, f domain.Filter) bool {
	return matchAny(f.Search, p.TransactionID, p.PolicyNumber, p.ClientName) &&
		matchExact(f.Status, p.Status)
}

func matchAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchExact(want, got string) bool {
	return want == "" || want == "all" || want == got
}
