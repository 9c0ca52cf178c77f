package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ReportPointsSchema = `
	CREATE TABLE IF NOT EXISTS report_points (
		report_type VARCHAR NOT NULL,
		date_range VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		label VARCHAR NOT NULL,
		value DOUBLE NOT NULL,
		PRIMARY KEY (report_type, date_range, position)
	);
`
const BreakdownsSchema = `
	CREATE TABLE IF NOT EXISTS breakdowns (
		name VARCHAR PRIMARY KEY,
		title VARCHAR NOT NULL,
		name_header VARCHAR NOT NULL,
		count_header VARCHAR NOT NULL,
		amount_header VARCHAR NOT NULL
	);
`
const BreakdownRowsSchema = `
	CREATE TABLE IF NOT EXISTS breakdown_rows (
		breakdown VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		name VARCHAR NOT NULL,
		label VARCHAR NOT NULL,
		count INTEGER NOT NULL,
		amount DOUBLE NOT NULL,
		color VARCHAR,
		PRIMARY KEY (breakdown, position)
	);
`
const ClientsSchema = `
	CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY,
		client_id VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		email VARCHAR,
		phone VARCHAR,
		type VARCHAR,
		policies INTEGER,
		join_date DATE
	);
`
const PoliciesSchema = `
	CREATE TABLE IF NOT EXISTS policies (
		id INTEGER PRIMARY KEY,
		policy_number VARCHAR NOT NULL,
		type VARCHAR,
		client_name VARCHAR,
		start_date DATE,
		end_date DATE,
		premium DOUBLE,
		status VARCHAR
	);
`
const ClaimsSchema = `
	CREATE TABLE IF NOT EXISTS claims (
		id INTEGER PRIMARY KEY,
		claim_number VARCHAR NOT NULL,
		policy_number VARCHAR,
		client_name VARCHAR,
		type VARCHAR,
		amount DOUBLE,
		filing_date DATE,
		status VARCHAR
	);
`
const PaymentsSchema = `
	CREATE TABLE IF NOT EXISTS payments (
		id INTEGER PRIMARY KEY,
		transaction_id VARCHAR NOT NULL,
		policy_number VARCHAR,
		client_name VARCHAR,
		amount DOUBLE,
		payment_date DATE,
		method VARCHAR,
		status VARCHAR
	);
`
const DashboardStatsSchema = `
	CREATE TABLE IF NOT EXISTS dashboard_stats (
		total_clients INTEGER NOT NULL,
		active_policies INTEGER NOT NULL,
		pending_claims INTEGER NOT NULL,
		revenue_this_month DOUBLE NOT NULL,
		expiring_policies INTEGER NOT NULL,
		pending_payments INTEGER NOT NULL
	);
`

var bootQueries = []string{
	ReportPointsSchema,
	BreakdownsSchema,
	BreakdownRowsSchema,
	ClientsSchema,
	PoliciesSchema,
	ClaimsSchema,
	PaymentsSchema,
	DashboardStatsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
