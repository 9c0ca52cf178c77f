package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/store/duckdb"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
)

const (
	clientColumns  = `id, client_id, name, email, phone, type, policies, join_date`
	policyColumns  = `id, policy_number, type, client_name, start_date, end_date, premium, status`
	claimColumns   = `id, claim_number, policy_number, client_name, type, amount, filing_date, status`
	paymentColumns = `id, transaction_id, policy_number, client_name, amount, payment_date, method, status`
)

type scanner interface {
	Scan(dest ...any) error
}

type sqlStore struct {
	db *sql.DB
}

// NewStore returns a read-only provider over the tables created by duckdb.NewDB.
func NewStore(db *sql.DB) (provider.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &sqlStore{db: db}, nil
}

func (s *sqlStore) Series(ctx context.Context, rt domain.ReportType, dr domain.DateRange) (domain.Series, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label, value
		FROM report_points
		WHERE report_type = ? AND date_range = ?
		ORDER BY position
	`, string(rt), string(dr))
	if err != nil {
		return domain.Series{}, fmt.Errorf("query report points: %w", err)
	}
	defer rows.Close()

	series := domain.Series{Type: rt, Range: dr, Points: []domain.Point{}}
	for rows.Next() {
		var p domain.Point
		if err := rows.Scan(&p.Label, &p.Value); err != nil {
			return domain.Series{}, fmt.Errorf("scan report point: %w", err)
		}
		series.Points = append(series.Points, p)
	}
	if err := rows.Err(); err != nil {
		return domain.Series{}, fmt.Errorf("iterate report points: %w", err)
	}
	if len(series.Points) == 0 {
		return domain.Series{}, fmt.Errorf("series %s/%s: %w", rt, dr, provider.ErrNotFound)
	}
	return series, nil
}

func (s *sqlStore) PolicyDistribution(ctx context.Context) (domain.Breakdown, error) {
	return s.breakdown(ctx, duckdb.BreakdownPolicyDistribution)
}

func (s *sqlStore) ClaimsAnalysis(ctx context.Context) (domain.Breakdown, error) {
	return s.breakdown(ctx, duckdb.BreakdownClaimsAnalysis)
}

func (s *sqlStore) breakdown(ctx context.Context, name string) (domain.Breakdown, error) {
	var b domain.Breakdown
	err := s.db.QueryRowContext(ctx, `
		SELECT title, name_header, count_header, amount_header
		FROM breakdowns
		WHERE name = ?
	`, name).Scan(&b.Title, &b.NameHeader, &b.CountHeader, &b.AmountHead)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Breakdown{}, fmt.Errorf("breakdown %s: %w", name, provider.ErrNotFound)
	}
	if err != nil {
		return domain.Breakdown{}, fmt.Errorf("query breakdown: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, label, count, amount, color
		FROM breakdown_rows
		WHERE breakdown = ?
		ORDER BY position
	`, name)
	if err != nil {
		return domain.Breakdown{}, fmt.Errorf("query breakdown rows: %w", err)
	}
	defer rows.Close()

	b.Rows = []domain.BreakdownRow{}
	for rows.Next() {
		var r domain.BreakdownRow
		var color sql.NullString
		if err := rows.Scan(&r.Name, &r.Label, &r.Count, &r.Amount, &color); err != nil {
			return domain.Breakdown{}, fmt.Errorf("scan breakdown row: %w", err)
		}
		r.Color = color.String
		b.Rows = append(b.Rows, r)
	}
	if err := rows.Err(); err != nil {
		return domain.Breakdown{}, fmt.Errorf("iterate breakdown rows: %w", err)
	}
	return b, nil
}

func (s *sqlStore) GetClient(ctx context.Context, id int) (domain.Client, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return getOne(row, scanClient, "client", id)
}

func (s *sqlStore) ListClients(ctx context.Context, filter domain.Filter) ([]domain.Client, error) {
	return list(ctx, s.db, `SELECT `+clientColumns+` FROM clients ORDER BY id`, scanClient, filter, provider.MatchClient)
}

func (s *sqlStore) GetPolicy(ctx context.Context, id int) (domain.Policy, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+policyColumns+` FROM policies WHERE id = ?`, id)
	return getOne(row, scanPolicy, "policy", id)
}

func (s *sqlStore) ListPolicies(ctx context.Context, filter domain.Filter) ([]domain.Policy, error) {
	return list(ctx, s.db, `SELECT `+policyColumns+` FROM policies ORDER BY id`, scanPolicy, filter, provider.MatchPolicy)
}

func (s *sqlStore) GetClaim(ctx context.Context, id int) (domain.Claim, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+claimColumns+` FROM claims WHERE id = ?`, id)
	return getOne(row, scanClaim, "claim", id)
}

func (s *sqlStore) ListClaims(ctx context.Context, filter domain.Filter) ([]domain.Claim, error) {
	return list(ctx, s.db, `SELECT `+claimColumns+` FROM claims ORDER BY id`, scanClaim, filter, provider.MatchClaim)
}

func (s *sqlStore) GetPayment(ctx context.Context, id int) (domain.Payment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	return getOne(row, scanPayment, "payment", id)
}

func (s *sqlStore) ListPayments(ctx context.Context, filter domain.Filter) ([]domain.Payment, error) {
	return list(ctx, s.db, `SELECT `+paymentColumns+` FROM payments ORDER BY id`, scanPayment, filter, provider.MatchPayment)
}

func (s *sqlStore) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var st domain.DashboardStats
	err := s.db.QueryRowContext(ctx, `
		SELECT total_clients, active_policies, pending_claims, revenue_this_month, expiring_policies, pending_payments
		FROM dashboard_stats
		LIMIT 1
	`).Scan(&st.TotalClients, &st.ActivePolicies, &st.PendingClaims, &st.RevenueThisMonth, &st.ExpiringPolicies, &st.PendingPayments)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", provider.ErrNotFound)
	}
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("query dashboard stats: %w", err)
	}
	return st, nil
}

func getOne[T any](row scanner, scan func(scanner) (T, error), entity string, id int) (T, error) {
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", entity, id, provider.ErrNotFound)
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("query %s: %w", entity, err)
	}
	return v, nil
}

func list[T any](
	ctx context.Context,
	db *sql.DB,
	query string,
	scan func(scanner) (T, error),
	filter domain.Filter,
	match func(T, domain.Filter) bool,
) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if match(v, filter) {
			out = append(out, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return out, nil
}

func scanClient(s scanner) (domain.Client, error) {
	var c domain.Client
	err := s.Scan(&c.ID, &c.ClientID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.Policies, &c.JoinDate)
	return c, err
}

func scanPolicy(s scanner) (domain.Policy, error) {
	var p domain.Policy
	err := s.Scan(&p.ID, &p.PolicyNumber, &p.Type, &p.ClientName, &p.StartDate, &p.EndDate, &p.Premium, &p.Status)
	return p, err
}

func scanClaim(s scanner) (domain.Claim, error) {
	var c domain.Claim
	err := s.Scan(&c.ID, &c.ClaimNumber, &c.PolicyNumber, &c.ClientName, &c.Type, &c.Amount, &c.FilingDate, &c.Status)
	return c, err
}

func scanPayment(s scanner) (domain.Payment, error) {
	var p domain.Payment
	err := s.Scan(&p.ID, &p.TransactionID, &p.PolicyNumber, &p.ClientName, &p.Amount, &p.PaymentDate, &p.Method, &p.Status)
	return p, err
}
