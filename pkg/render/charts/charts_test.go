package charts

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/render/view"
	"github.com/de-tools/insure-atlas/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	assert.Equal(t, view.ChartLine, For(domain.ReportTypePolicies).Kind)
	assert.Equal(t, Spec{Kind: view.ChartBar, Color: "#0d6efd"}, For(domain.ReportTypeRevenue))
	assert.Equal(t, "#dc3545", For(domain.ReportTypeClaims).Color)
	assert.Equal(t, "#6f42c1", For(domain.ReportTypeClients).Color)
}

func TestRenderer_Series(t *testing.T) {
	store := memory.NewStore()
	r := NewRenderer()

	for _, rt := range domain.ReportTypes {
		for _, dr := range domain.DateRanges {
			t.Run(string(rt)+"/"+string(dr), func(t *testing.T) {
				s, err := store.Series(context.Background(), rt, dr)
				require.NoError(t, err)

				out, err := r.Series(s)
				require.NoError(t, err)

				img, err := png.Decode(bytes.NewReader(out))
				require.NoError(t, err)
				assert.Equal(t, DefaultWidth, img.Bounds().Dx())
				assert.Equal(t, DefaultHeight, img.Bounds().Dy())
			})
		}
	}
}

func TestRenderer_Breakdown(t *testing.T) {
	store := memory.NewStore()
	b, err := store.PolicyDistribution(context.Background())
	require.NoError(t, err)

	out, err := NewRenderer().Breakdown(b)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
}

func TestRenderer_NoData(t *testing.T) {
	r := NewRenderer()

	_, err := r.Series(domain.Series{Type: domain.ReportTypeRevenue, Range: domain.DateRangeMonth})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = r.Series(domain.Series{
		Type:   domain.ReportTypeClaims,
		Range:  domain.DateRangeMonth,
		Points: []domain.Point{{Label: "Jan", Value: 0}},
	})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = r.Breakdown(domain.Breakdown{Title: "empty"})
	assert.ErrorIs(t, err, ErrNoData)
}
