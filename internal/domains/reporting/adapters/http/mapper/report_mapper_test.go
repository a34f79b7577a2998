package mapper

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

func TestFromMonthlySeries_TwelveMonthsPerMethod(t *testing.T) {
	series, err := domain.BuildMonthlySeries([]domain.SalesRecord{
		{Method: "VISA", Month: 2, Total: decimal.RequireFromString("10.5")},
		{Method: "COD", Month: 12, Total: decimal.NewFromInt(3)},
	})
	require.NoError(t, err)

	out := FromMonthlySeries(series)
	require.Len(t, out, 2)
	require.Equal(t, "VISA", out[0].Method)
	require.Len(t, out[0].Data, 12)
	require.Equal(t, "10.5", out[0].Data[1].String())
	require.Equal(t, "3", out[1].Data[11].String())

	require.Empty(t, FromMonthlySeries(nil))
}

func TestFromHistogram_SerialisesTotalsAsStrings(t *testing.T) {
	histogram, err := domain.BuildStatusHistogram([]domain.StatusOverviewRecord{{Status: "delivered", Total: decimal.NewFromInt(4)}})
	require.NoError(t, err)

	raw, err := json.Marshal(FromHistogram(histogram))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 6)
	require.Equal(t, "cancel", decoded[0]["orderStatus"])
	require.Equal(t, "0", decoded[0]["total"])
	require.Equal(t, "delivered", decoded[1]["orderStatus"])
	require.Equal(t, "4", decoded[1]["total"])
}
