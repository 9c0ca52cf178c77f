package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/store/memory"
)

const (
	BreakdownPolicyDistribution = "policy_distribution"
	BreakdownClaimsAnalysis     = "claims_analysis"
)

// Seed loads fixtures into an empty database in one transaction. A database that
// already holds report data is left untouched; the result reports whether rows were written.
func Seed(ctx context.Context, db *sql.DB, f memory.Fixtures) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_points`).Scan(&count); err != nil {
		return false, fmt.Errorf("count report points: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	steps := []func(context.Context, memory.Fixtures) error{
		seedSeries,
		seedBreakdowns,
		seedClients,
		seedPolicies,
		seedClaims,
		seedPayments,
		seedStats,
	}
	err := InTransaction(ctx, db, func(ctx context.Context) error {
		for _, step := range steps {
			if err := step(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}

func exec(ctx context.Context, query string, args ...any) error {
	tx := GetTransaction(ctx)
	if tx == nil {
		return fmt.Errorf("seed requires a transaction")
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

func seedSeries(ctx context.Context, f memory.Fixtures) error {
	for _, s := range f.Series {
		for i, p := range s.Points {
			err := exec(ctx,
				`INSERT INTO report_points (report_type, date_range, position, label, value) VALUES (?, ?, ?, ?, ?)`,
				string(s.Type), string(s.Range), i, p.Label, p.Value,
			)
			if err != nil {
				return fmt.Errorf("insert report point %s/%s/%d: %w", s.Type, s.Range, i, err)
			}
		}
	}
	return nil
}

func seedBreakdowns(ctx context.Context, f memory.Fixtures) error {
	for _, b := range []struct {
		name string
		data domain.Breakdown
	}{
		{BreakdownPolicyDistribution, f.PolicyDistribution},
		{BreakdownClaimsAnalysis, f.ClaimsAnalysis},
	} {
		err := exec(ctx,
			`INSERT INTO breakdowns (name, title, name_header, count_header, amount_header) VALUES (?, ?, ?, ?, ?)`,
			b.name, b.data.Title, b.data.NameHeader, b.data.CountHeader, b.data.AmountHead,
		)
		if err != nil {
			return fmt.Errorf("insert breakdown %s: %w", b.name, err)
		}
		for i, row := range b.data.Rows {
			err := exec(ctx,
				`INSERT INTO breakdown_rows (breakdown, position, name, label, count, amount, color) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				b.name, i, row.Name, row.Label, row.Count, row.Amount, row.Color,
			)
			if err != nil {
				return fmt.Errorf("insert breakdown row %s/%d: %w", b.name, i, err)
			}
		}
	}
	return nil
}

func seedClients(ctx context.Context, f memory.Fixtures) error {
	for _, c := range f.Clients {
		err := exec(ctx,
			`INSERT INTO clients (id, client_id, name, email, phone, type, policies, join_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.ClientID, c.Name, c.Email, c.Phone, c.Type, c.Policies, c.JoinDate,
		)
		if err != nil {
			return fmt.Errorf("insert client %d: %w", c.ID, err)
		}
	}
	return nil
}

func seedPolicies(ctx context.Context, f memory.Fixtures) error {
	for _, p := range f.Policies {
		err := exec(ctx,
			`INSERT INTO policies (id, policy_number, type, client_name, start_date, end_date, premium, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.PolicyNumber, p.Type, p.ClientName, p.StartDate, p.EndDate, p.Premium.InexactFloat64(), p.Status,
		)
		if err != nil {
			return fmt.Errorf("insert policy %d: %w", p.ID, err)
		}
	}
	return nil
}

func seedClaims(ctx context.Context, f memory.Fixtures) error {
	for _, c := range f.Claims {
		err := exec(ctx,
			`INSERT INTO claims (id, claim_number, policy_number, client_name, type, amount, filing_date, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.ClaimNumber, c.PolicyNumber, c.ClientName, c.Type, c.Amount.InexactFloat64(), c.FilingDate, c.Status,
		)
		if err != nil {
			return fmt.Errorf("insert claim %d: %w", c.ID, err)
		}
	}
	return nil
}

func seedPayments(ctx context.Context, f memory.Fixtures) error {
	for _, p := range f.Payments {
		err := exec(ctx,
			`INSERT INTO payments (id, transaction_id, policy_number, client_name, amount, payment_date, method, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.TransactionID, p.PolicyNumber, p.ClientName, p.Amount.InexactFloat64(), p.PaymentDate, p.Method, p.Status,
		)
		if err != nil {
			return fmt.Errorf("insert payment %d: %w", p.ID, err)
		}
	}
	return nil
}

func seedStats(ctx context.Context, f memory.Fixtures) error {
	s := f.Stats
	err := exec(ctx,
		`INSERT INTO dashboard_stats (total_clients, active_policies, pending_claims, revenue_this_month, expiring_policies, pending_payments) VALUES (?, ?, ?, ?, ?, ?)`,
		s.TotalClients, s.ActivePolicies, s.PendingClaims, s.RevenueThisMonth.InexactFloat64(), s.ExpiringPolicies, s.PendingPayments,
	)
	if err != nil {
		return fmt.Errorf("insert dashboard stats: %w", err)
	}
	return nil
}
