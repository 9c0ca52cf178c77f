package memory

import (
	"time"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type seriesKey struct {
	rt domain.ReportType
	dr domain.DateRange
}

var seriesTable = map[seriesKey][]domain.Point{
	{domain.ReportTypeRevenue, domain.DateRangeMonth}: {
		{Label: "Jan", Value: 35000}, {Label: "Feb", Value: 42000}, {Label: "Mar", Value: 38000},
		{Label: "Apr", Value: 45000}, {Label: "May", Value: 48000},
	},
	{domain.ReportTypeRevenue, domain.DateRangeQuarter}: {
		{Label: "Q1", Value: 115000}, {Label: "Q2", Value: 130000},
	},
	{domain.ReportTypeRevenue, domain.DateRangeYear}: {
		{Label: "2024", Value: 420000}, {Label: "2025 (YTD)", Value: 245000},
	},
	{domain.ReportTypePolicies, domain.DateRangeMonth}: {
		{Label: "Jan", Value: 45}, {Label: "Feb", Value: 52}, {Label: "Mar", Value: 48},
		{Label: "Apr", Value: 60}, {Label: "May", Value: 55},
	},
	{domain.ReportTypePolicies, domain.DateRangeQuarter}: {
		{Label: "Q1", Value: 145}, {Label: "Q2", Value: 115},
	},
	{domain.ReportTypePolicies, domain.DateRangeYear}: {
		{Label: "2024", Value: 520}, {Label: "2025 (YTD)", Value: 260},
	},
	{domain.ReportTypeClaims, domain.DateRangeMonth}: {
		{Label: "Jan", Value: 12}, {Label: "Feb", Value: 15}, {Label: "Mar", Value: 10},
		{Label: "Apr", Value: 18}, {Label: "May", Value: 14},
	},
	{domain.ReportTypeClaims, domain.DateRangeQuarter}: {
		{Label: "Q1", Value: 37}, {Label: "Q2", Value: 32},
	},
	{domain.ReportTypeClaims, domain.DateRangeYear}: {
		{Label: "2024", Value: 145}, {Label: "2025 (YTD)", Value: 69},
	},
	{domain.ReportTypeClients, domain.DateRangeMonth}: {
		{Label: "Jan", Value: 20}, {Label: "Feb", Value: 25}, {Label: "Mar", Value: 18},
		{Label: "Apr", Value: 30}, {Label: "May", Value: 22},
	},
	{domain.ReportTypeClients, domain.DateRangeQuarter}: {
		{Label: "Q1", Value: 63}, {Label: "Q2", Value: 52},
	},
	{domain.ReportTypeClients, domain.DateRangeYear}: {
		{Label: "2024", Value: 230}, {Label: "2025 (YTD)", Value: 115},
	},
}

var policyDistribution = domain.Breakdown{
	Title:       "Policy Distribution by Type",
	NameHeader:  "Policy Type",
	CountHeader: "Count",
	AmountHead:  "Revenue",
	Rows: []domain.BreakdownRow{
		{Name: "Auto", Label: "Auto Insurance", Count: 78, Amount: 93600, Color: "0d6efd"},
		{Name: "Home", Label: "Home Insurance", Count: 45, Amount: 42750, Color: "198754"},
		{Name: "Life", Label: "Life Insurance", Count: 32, Amount: 48000, Color: "6f42c1"},
		{Name: "Health", Label: "Health Insurance", Count: 56, Amount: 123200, Color: "dc3545"},
		{Name: "Business", Label: "Business Insurance", Count: 22, Amount: 121000, Color: "fd7e14"},
		{Name: "Travel", Label: "Travel Insurance", Count: 10, Amount: 4500, Color: "0dcaf0"},
	},
}

var claimsAnalysis = domain.Breakdown{
	Title:       "Claims Analysis",
	NameHeader:  "Status",
	CountHeader: "Count",
	AmountHead:  "Amount",
	Rows: []domain.BreakdownRow{
		{Name: "Pending", Label: "Pending", Count: 12, Amount: 48500, Color: "ffc107"},
		{Name: "Under Review", Label: "Under Review", Count: 8, Amount: 85000, Color: "0dcaf0"},
		{Name: "Approved", Label: "Approved", Count: 25, Amount: 137500, Color: "198754"},
		{Name: "Denied", Label: "Denied", Count: 5, Amount: 22000, Color: "dc3545"},
		{Name: "Paid", Label: "Paid", Count: 19, Amount: 105750, Color: "0d6efd"},
	},
}

var clients = []domain.Client{
	{ID: 1, ClientID: "CL-2025-001", Name: "John Doe", Email: "john.doe@example.com", Phone: "(555) 123-4567", Type: "Individual", Policies: 2, JoinDate: day("2025-01-10")},
	{ID: 2, ClientID: "CL-2025-002", Name: "Sarah Johnson", Email: "sarah.j@example.com", Phone: "(555) 234-5678", Type: "Individual", Policies: 1, JoinDate: day("2025-02-15")},
	{ID: 3, ClientID: "CL-2025-003", Name: "Corporate Solutions Inc.", Email: "contact@corpsolutions.com", Phone: "(555) 987-6543", Type: "Corporate", Policies: 5, JoinDate: day("2025-03-01")},
	{ID: 4, ClientID: "CL-2025-004", Name: "Emily Wilson", Email: "emily.w@example.com", Phone: "(555) 345-6789", Type: "Individual", Policies: 2, JoinDate: day("2025-01-20")},
	{ID: 5, ClientID: "CL-2025-005", Name: "Tech Innovators LLC", Email: "info@techinnovators.com", Phone: "(555) 876-5432", Type: "Corporate", Policies: 3, JoinDate: day("2025-04-05")},
	{ID: 6, ClientID: "CL-2025-006", Name: "Michael Smith", Email: "michael.s@example.com", Phone: "(555) 456-7890", Type: "Individual", Policies: 1, JoinDate: day("2025-04-15")},
	{ID: 7, ClientID: "CL-2025-007", Name: "Global Enterprises", Email: "contact@globalent.com", Phone: "(555) 765-4321", Type: "Corporate", Policies: 4, JoinDate: day("2025-05-01")},
}

var policies = []domain.Policy{
	{ID: 1, PolicyNumber: "POL-2025-001", Type: "Auto", ClientName: "John Doe", StartDate: day("2025-01-15"), EndDate: day("2026-01-14"), Premium: decimal.NewFromInt(1200), Status: "Active"},
	{ID: 2, PolicyNumber: "POL-2025-002", Type: "Home", ClientName: "Sarah Johnson", StartDate: day("2025-02-10"), EndDate: day("2026-02-09"), Premium: decimal.NewFromInt(950), Status: "Active"},
	{ID: 3, PolicyNumber: "POL-2025-003", Type: "Life", ClientName: "Michael Smith", StartDate: day("2025-03-01"), EndDate: day("2026-02-28"), Premium: decimal.NewFromInt(1500), Status: "Active"},
	{ID: 4, PolicyNumber: "POL-2025-004", Type: "Health", ClientName: "Emily Wilson", StartDate: day("2025-01-20"), EndDate: day("2025-06-19"), Premium: decimal.NewFromInt(2200), Status: "Pending"},
	{ID: 5, PolicyNumber: "POL-2024-089", Type: "Travel", ClientName: "David Brown", StartDate: day("2024-12-10"), EndDate: day("2025-06-09"), Premium: decimal.NewFromInt(450), Status: "Expired"},
	{ID: 6, PolicyNumber: "POL-2025-005", Type: "Business", ClientName: "Corporate Solutions Inc.", StartDate: day("2025-04-01"), EndDate: day("2026-03-31"), Premium: decimal.NewFromInt(5500), Status: "Active"},
	{ID: 7, PolicyNumber: "POL-2025-006", Type: "Auto", ClientName: "Jennifer Adams", StartDate: day("2025-05-15"), EndDate: day("2026-05-14"), Premium: decimal.NewFromInt(1100), Status: "Pending"},
}

var claims = []domain.Claim{
	{ID: 1, ClaimNumber: "CLM-2025-001", PolicyNumber: "POL-2025-001", ClientName: "John Doe", Type: "Auto", Amount: decimal.NewFromInt(3500), FilingDate: day("2025-04-10"), Status: "Pending"},
	{ID: 2, ClaimNumber: "CLM-2025-002", PolicyNumber: "POL-2025-003", ClientName: "Michael Smith", Type: "Life", Amount: decimal.NewFromInt(50000), FilingDate: day("2025-03-15"), Status: "Under Review"},
	{ID: 3, ClaimNumber: "CLM-2025-003", PolicyNumber: "POL-2025-002", ClientName: "Sarah Johnson", Type: "Home", Amount: decimal.NewFromInt(12500), FilingDate: day("2025-02-28"), Status: "Approved"},
	{ID: 4, ClaimNumber: "CLM-2025-004", PolicyNumber: "POL-2025-004", ClientName: "Emily Wilson", Type: "Health", Amount: decimal.NewFromInt(4800), FilingDate: day("2025-04-05"), Status: "Pending"},
	{ID: 5, ClaimNumber: "CLM-2025-005", PolicyNumber: "POL-2024-089", ClientName: "David Brown", Type: "Travel", Amount: decimal.NewFromInt(1200), FilingDate: day("2025-01-20"), Status: "Denied"},
	{ID: 6, ClaimNumber: "CLM-2025-006", PolicyNumber: "POL-2025-005", ClientName: "Corporate Solutions Inc.", Type: "Business", Amount: decimal.NewFromInt(35000), FilingDate: day("2025-05-01"), Status: "Under Review"},
}

var payments = []domain.Payment{
	{ID: 1, TransactionID: "TRX-2025-001", PolicyNumber: "POL-2025-001", ClientName: "John Doe", Amount: decimal.NewFromInt(1200), PaymentDate: day("2025-01-15"), Method: "Credit Card", Status: "Completed"},
	{ID: 2, TransactionID: "TRX-2025-002", PolicyNumber: "POL-2025-002", ClientName: "Sarah Johnson", Amount: decimal.NewFromInt(950), PaymentDate: day("2025-02-10"), Method: "Bank Transfer", Status: "Completed"},
	{ID: 3, TransactionID: "TRX-2025-003", PolicyNumber: "POL-2025-003", ClientName: "Michael Smith", Amount: decimal.NewFromInt(1500), PaymentDate: day("2025-03-01"), Method: "Credit Card", Status: "Completed"},
	{ID: 4, TransactionID: "TRX-2025-004", PolicyNumber: "POL-2025-004", ClientName: "Emily Wilson", Amount: decimal.NewFromInt(2200), PaymentDate: day("2025-05-20"), Method: "PayPal", Status: "Pending"},
	{ID: 5, TransactionID: "TRX-2025-005", PolicyNumber: "POL-2025-005", ClientName: "Corporate Solutions Inc.", Amount: decimal.NewFromInt(5500), PaymentDate: day("2025-04-01"), Method: "Bank Transfer", Status: "Completed"},
	{ID: 6, TransactionID: "TRX-2025-006", PolicyNumber: "POL-2025-006", ClientName: "Jennifer Adams", Amount: decimal.NewFromInt(1100), PaymentDate: day("2025-05-15"), Method: "Credit Card", Status: "Failed"},
	{ID: 7, TransactionID: "TRX-2025-007", PolicyNumber: "POL-2025-003", ClientName: "Michael Smith", Amount: decimal.NewFromInt(750), PaymentDate: day("2025-06-01"), Method: "PayPal", Status: "Pending"},
}

var stats = domain.DashboardStats{
	TotalClients:     156,
	ActivePolicies:   243,
	PendingClaims:    12,
	RevenueThisMonth: decimal.NewFromInt(45750),
	ExpiringPolicies: 8,
	PendingPayments:  5,
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
