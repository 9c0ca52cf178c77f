package format

import (
	"testing"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{35000, "$35,000"},
		{208000, "$208,000"},
		{950, "$950"},
		{1234.5, "$1,234.50"},
		{0, "$0"},
		{-42000, "-$42,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in))
	}
}

func TestValue_UsesReportUnit(t *testing.T) {
	assert.Equal(t, "$45,000", Value(domain.ReportTypeRevenue, 45000))
	assert.Equal(t, "1450", Value(domain.ReportTypePolicies, 1450))
	assert.Equal(t, "37", Value(domain.ReportTypeClaims, 37))
}

func TestShareOfTotal(t *testing.T) {
	assert.Equal(t, "16.8%", ShareOfTotal(35000, 208000))
	assert.Equal(t, "53.6%", ShareOfTotal(37, 69))
	assert.Equal(t, "0.0%", ShareOfTotal(10, 0))
}
