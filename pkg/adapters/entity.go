package adapters

import (
	"time"

	"github.com/de-tools/insure-atlas/pkg/models/api"
	"github.com/de-tools/insure-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func MapDomainClientToApi(c domain.Client) api.Client {
	return api.Client{
		ID:       c.ID,
		ClientID: c.ClientID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Type:     c.Type,
		Policies: c.Policies,
		JoinDate: date(c.JoinDate),
	}
}

func MapDomainPolicyToApi(p domain.Policy) api.Policy {
	return api.Policy{
		ID:           p.ID,
		PolicyNumber: p.PolicyNumber,
		Type:         p.Type,
		ClientName:   p.ClientName,
		StartDate:    date(p.StartDate),
		EndDate:      date(p.EndDate),
		Premium:      p.Premium,
		Status:       p.Status,
	}
}

func MapDomainClaimToApi(c domain.Claim) api.Claim {
	return api.Claim{
		ID:           c.ID,
		ClaimNumber:  c.ClaimNumber,
		PolicyNumber: c.PolicyNumber,
		ClientName:   c.ClientName,
		Type:         c.Type,
		Amount:       c.Amount,
		FilingDate:   date(c.FilingDate),
		Status:       c.Status,
	}
}

func MapDomainPaymentToApi(p domain.Payment) api.Payment {
	return api.Payment{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		PolicyNumber:  p.PolicyNumber,
		ClientName:    p.ClientName,
		Amount:        p.Amount,
		PaymentDate:   date(p.PaymentDate),
		Method:        p.Method,
		Status:        p.Status,
	}
}

func MapDomainStatsToApi(s domain.DashboardStats) api.DashboardStats {
	return api.DashboardStats{
		TotalClients:     s.TotalClients,
		ActivePolicies:   s.ActivePolicies,
		PendingClaims:    s.PendingClaims,
		RevenueThisMonth: s.RevenueThisMonth,
		ExpiringPolicies: s.ExpiringPolicies,
		PendingPayments:  s.PendingPayments,
	}
}

// MapSlice applies fn to every item and never returns nil, so empty listings encode as [].
func MapSlice[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
