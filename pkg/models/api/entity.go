package api

import "github.com/shopspring/decimal"

type Client struct {
	ID       int    `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Type     string `json:"type"`
	Policies int    `json:"policies"`
	JoinDate string `json:"join_date"`
}

type Policy struct {
	ID           int             `json:"id"`
	PolicyNumber string          `json:"policy_number"`
	Type         string          `json:"type"`
	ClientName   string          `json:"client_name"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Premium      decimal.Decimal `json:"premium"`
	Status       string          `json:"status"`
}

type Claim struct {
	ID           int             `json:"id"`
	ClaimNumber  string          `json:"claim_number"`
	PolicyNumber string          `json:"policy_number"`
	ClientName   string          `json:"client_name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	FilingDate   string          `json:"filing_date"`
	Status       string          `json:"status"`
}

type Payment struct {
	ID            int             `json:"id"`
	TransactionID string          `json:"transaction_id"`
	PolicyNumber  string          `json:"policy_number"`
	ClientName    string          `json:"client_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
}

type DashboardStats struct {
	TotalClients     int             `json:"total_clients"`
	ActivePolicies   int             `json:"active_policies"`
	PendingClaims    int             `json:"pending_claims"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	ExpiringPolicies int             `json:"expiring_policies"`
	PendingPayments  int             `json:"pending_payments"`
}
