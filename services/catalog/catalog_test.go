package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	pkg, ok := Get("solo")
	require.True(t, ok)
	assert.Equal(t, "Solo Package", pkg.Name)
	assert.Equal(t, 299, pkg.Price)
	assert.Equal(t, 15, pkg.Duration)

	_, ok = Get("deluxe")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.Len(t, all, 7)

	all[0].Price = 1
	fresh, _ := Get(all[0].ID)
	assert.NotEqual(t, 1, fresh.Price)
}

func TestExtensionPrice(t *testing.T) {
	assert.Equal(t, 0, ExtensionPrice(0))
	assert.Equal(t, 150, ExtensionPrice(15))
	assert.Equal(t, 600, ExtensionPrice(60))
	assert.Equal(t, 0, ExtensionPrice(20))
}

func TestValidExtension(t *testing.T) {
	for _, minutes := range []int{0, 15, 30, 45, 60} {
		assert.True(t, ValidExtension(minutes), "minutes=%d", minutes)
	}
	assert.False(t, ValidExtension(20))
	assert.False(t, ValidExtension(-15))
	assert.False(t, ValidExtension(90))
}

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name      string
		packageID string
		extension int
		want      Quote
	}{
		{
			name:      "solo no extension rounds downpayment up",
			packageID: "solo",
			extension: 0,
			want:      Quote{BasePrice: 299, ExtensionPrice: 0, TotalPrice: 299, Downpayment: 150, DurationTotal: 15},
		},
		{
			name:      "basic with 30 minute extension",
			packageID: "basic",
			extension: 30,
			want:      Quote{BasePrice: 399, ExtensionPrice: 300, TotalPrice: 699, Downpayment: 350, DurationTotal: 55},
		},
		{
			name:      "barkada with 60 minute extension",
			packageID: "barkada",
			extension: 60,
			want:      Quote{BasePrice: 1949, ExtensionPrice: 600, TotalPrice: 2549, Downpayment: 1275, DurationTotal: 110},
		},
		{
			name:      "unknown package yields zero base",
			packageID: "deluxe",
			extension: 15,
			want:      Quote{BasePrice: 0, ExtensionPrice: 150, TotalPrice: 150, Downpayment: 75, DurationTotal: 15},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeQuote(tt.packageID, tt.extension))
		})
	}
}
