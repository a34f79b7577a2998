package reportctl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	reportports "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

type stubService struct {
	reportports.Service
	year  int
	limit int
}

func (s *stubService) StatusHistogram(context.Context) ([]domain.StatusTotal, error) {
	return domain.BuildStatusHistogram([]domain.StatusOverviewRecord{{Status: "delivered", Total: decimal.NewFromInt(3)}})
}

func (s *stubService) MonthlySales(_ context.Context, year int) (*domain.MonthlySeries, error) {
	s.year = year
	return domain.BuildMonthlySeries([]domain.SalesRecord{{Method: "COD", Month: 1, Total: decimal.RequireFromString("9.5")}})
}

func (s *stubService) TopSelling(_ context.Context, limit int) ([]domain.TopSellingRecord, error) {
	s.limit = limit
	return []domain.TopSellingRecord{{Name: "Tee", Sold: 4}}, nil
}

func (s *stubService) RevenueSummary(context.Context) (domain.RevenueSummary, error) {
	return domain.RevenueSummary{TotalRevenue: decimal.RequireFromString("42.5"), TotalOrders: 3, TotalPaidOrders: 2}, nil
}

func (s *stubService) TotalProducts(context.Context) (int64, error) {
	return 6, nil
}

func run(t *testing.T, svc reportports.Service, args ...string) (string, Options, error) {
	t.Helper()
	for _, key := range []string{"REPORTING_SOURCE", "BACKEND_API_URL", "BACKEND_API_TOKEN"} {
		t.Setenv(key, "")
	}
	var out bytes.Buffer
	var got Options
	released := false
	app := NewApp(&out, func(_ context.Context, opts Options) (reportports.Service, func(), error) {
		got = opts
		return svc, func() { released = true }, nil
	})
	err := app.Run(append([]string{"reportctl"}, args...))
	if err == nil {
		require.True(t, released)
	}
	return out.String(), got, err
}

func TestOverviewTable(t *testing.T) {
	out, _, err := run(t, &stubService{}, "overview")
	require.NoError(t, err)
	require.Contains(t, out, "STATUS")
	require.Contains(t, out, "delivered")
	require.Contains(t, out, "In progress shipping")
}

func TestSalesJSONPassesYear(t *testing.T) {
	svc := &stubService{}
	out, _, err := run(t, svc, "--format", "json", "sales", "--year", "2023")
	require.NoError(t, err)
	require.Equal(t, 2023, svc.year)

	var rows []struct {
		Method string   `json:"method"`
		Data   []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "9.5", rows[0].Data[0])
}

func TestTopSellingPassesSourceFlags(t *testing.T) {
	svc := &stubService{}
	out, opts, err := run(t, svc, "--source", "remote", "--backend-url", "http://backend", "top-selling", "--limit", "3")
	require.NoError(t, err)
	require.Equal(t, 3, svc.limit)
	require.Equal(t, Options{Source: "remote", BackendURL: "http://backend"}, opts)
	require.Contains(t, out, "Tee")
}

func TestSummaryIncludesProducts(t *testing.T) {
	out, _, err := run(t, &stubService{}, "--format", "json", "summary")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "42.5", got["totalRevenue"])
	require.EqualValues(t, 3, got["totalOrders"])
	require.EqualValues(t, 6, got["totalProducts"])
}

func TestRejectsUnknownFormat(t *testing.T) {
	_, _, err := run(t, &stubService{}, "--format", "xml", "overview")
	require.Error(t, err)
}

func TestFactoryErrorStopsCommand(t *testing.T) {
	app := NewApp(&bytes.Buffer{}, func(context.Context, Options) (reportports.Service, func(), error) {
		return nil, nil, errors.New("no source")
	})
	require.EqualError(t, app.Run([]string{"reportctl", "overview"}), "no source")
}
