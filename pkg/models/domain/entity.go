package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID       int
	ClientID string
	Name     string
	Email    string
	Phone    string
	Type     string
	Policies int
	JoinDate time.Time
}

type Policy struct {
	ID           int
	PolicyNumber string
	Type         string
	ClientName   string
	StartDate    time.Time
	EndDate      time.Time
	Premium      decimal.Decimal
	Status       string
}

type Claim struct {
	ID           int
	ClaimNumber  string
	PolicyNumber string
	ClientName   string
	Type         string
	Amount       decimal.Decimal
	FilingDate   time.Time
	Status       string
}

type Payment struct {
	ID            int
	TransactionID string
	PolicyNumber  string
	ClientName    string
	Amount        decimal.Decimal
	PaymentDate   time.Time
	Method        string
	Status        string
}

// Filter narrows entity listings. Empty fields match everything.
type Filter struct {
	Search string
	Status string
	Type   string
}

// DashboardStats are the headline counters of the landing page.
type DashboardStats struct {
	TotalClients     int
	ActivePolicies   int
	PendingClaims    int
	RevenueThisMonth decimal.Decimal
	ExpiringPolicies int
	PendingPayments  int
}
